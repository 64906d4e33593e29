package engine

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/drummonds/dataviz/config"
)

// StartupChecks performs all the checks to make sure everything works.
// A missing wasm build is only a warning: the page is still prerendered.
func (serverHandler *ServerHandler) StartupChecks() error {
	if err := config.CheckWebDir(serverHandler.ServerConfig.WebDir, Logger); err != nil {
		Logger.Warn("Interactive features disabled until the wasm binary is built", "error", err)
	}
	return assetChecks(serverHandler.Assets)
}

// assetChecks ensures the embedded stylesheet and logo are present
func assetChecks(assets fs.FS) error {
	if assets == nil {
		return errors.New("no embedded assets configured")
	}

	var errs []error
	for _, name := range []string{StylesheetAsset, LogoAsset} {
		info, err := fs.Stat(assets, name)
		if err != nil {
			Logger.Error("Embedded asset missing", "asset", name, "error", err)
			errs = append(errs, fmt.Errorf("asset %s: %w", name, err))
			continue
		}
		Logger.Debug("Embedded asset found", "asset", name, "size", info.Size())
	}
	return errors.Join(errs...)
}
