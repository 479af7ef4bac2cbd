package shared

import (
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-plugin"

	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/config"
	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/logger"
)

const PluginTypeLinter string = "linter"

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "SCANIO_SHELLCHECK",
	MagicCookieValue: "5d0c1e0b7f3a4e2c9b8a6d4f2e1c0b9a8f7e6d5c",
}

var PluginMap = map[string]plugin.Plugin{
	PluginTypeLinter: &LinterPlugin{},
}

// WithPlugin starts the plugin binary at pluginPath, dispenses its linter and passes it to f.
// The plugin process is killed when f returns.
func WithPlugin(cfg *config.Config, loggerName string, pluginPath string, f func(Linter) error) error {
	logger := logger.NewLogger(cfg, loggerName)

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  HandshakeConfig,
		Plugins:          PluginMap,
		Cmd:              exec.Command(pluginPath),
		Logger:           logger,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
	})
	defer client.Kill()

	rpcClient, err := client.Client()
	if err != nil {
		return fmt.Errorf("failed to start plugin %q: %w", pluginPath, err)
	}

	raw, err := rpcClient.Dispense(PluginTypeLinter)
	if err != nil {
		return fmt.Errorf("failed to dispense %q from plugin %q: %w", PluginTypeLinter, pluginPath, err)
	}

	linter, ok := raw.(Linter)
	if !ok {
		return fmt.Errorf("plugin %q does not implement the linter interface", pluginPath)
	}

	return f(linter)
}
