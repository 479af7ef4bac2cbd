package shellcheck

import (
	"sync"

	"github.com/hashicorp/go-hclog"
)

var initOnce sync.Once

// Init is called by the host once it loads the adapter. Later calls do nothing.
func Init(logger hclog.Logger) {
	initOnce.Do(func() {
		logger.Info("plugin initialized", "syntaxes", Syntaxes)
	})
}
