// Package plugin hosts the go-plugin client side: handshake, plugin map and
// the loader that turns a connector binary path into a Publisher.
package plugin

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	goplugin "github.com/hashicorp/go-plugin"

	domainplugin "github.com/kensho-project/kensho/internal/domain/plugin"
)

var HandshakeConfig = goplugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "KENSHO_PLUGIN",
	MagicCookieValue: "kensho",
}

var PluginMap = map[string]goplugin.Plugin{
	"publisher": &domainplugin.PublisherPlugin{},
}

// Loader manages connector plugin processes for the lifetime of a dispatch.
type Loader struct {
	plugins map[string]*goplugin.Client
}

func NewLoader() *Loader {
	return &Loader{
		plugins: make(map[string]*goplugin.Client),
	}
}

// Load starts the plugin binary at path and dispenses its Publisher.
func (l *Loader) Load(path string) (domainplugin.Publisher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid plugin path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("plugin not found: %s", absPath)
		}
		return nil, fmt.Errorf("cannot access plugin: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("plugin path is a directory: %s", absPath)
	}

	if runtime.GOOS != "windows" {
		if info.Mode()&0111 == 0 {
			return nil, fmt.Errorf("plugin is not executable: %s", absPath)
		}
	}

	client := goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig: HandshakeConfig,
		Plugins:         PluginMap,
		Cmd:             exec.Command(path),
		AllowedProtocols: []goplugin.Protocol{
			goplugin.ProtocolNetRPC,
		},
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to create plugin client: %w", err)
	}

	raw, err := rpcClient.Dispense("publisher")
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	l.plugins[path] = client
	return raw.(domainplugin.Publisher), nil
}

// Cleanup kills all plugin processes started by this loader.
func (l *Loader) Cleanup() {
	for _, client := range l.plugins {
		client.Kill()
	}
}
