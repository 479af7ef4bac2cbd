package shared

import (
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// Linter is the contract between a host and a linter adapter plugin.
type Linter interface {
	Setup(req LinterSetupRequest) (LinterProfile, error)
	TempfileName(req TempfileRequest) (string, error)
}

// LinterSetupRequest carries what the host knows about the view being linted.
type LinterSetupRequest struct {
	Filename       string // File backing the view, empty for unsaved buffers
	SettingsFolder string // Folder holding the adapter's config file
	BundleFolder   string // Optional override for the bundled executable folder
}

// LinterProfile describes how the host should run the linter for one view.
type LinterProfile struct {
	Enabled        bool
	Executable     string
	Source         string
	Cmd            []string
	Regex          string
	Multiline      bool
	TempfileSuffix string
	Syntaxes       []string
	IgnoreCodes    []string
}

// TempfileRequest asks the adapter to name a temp file for a buffer.
type TempfileRequest struct {
	Dir      string
	Filename string
}

type LinterRPCClient struct{ client *rpc.Client }

func (g *LinterRPCClient) Setup(req LinterSetupRequest) (LinterProfile, error) {
	var resp LinterProfile
	err := g.client.Call("Plugin.Setup", req, &resp)
	if err != nil {
		return resp, err
	}
	return resp, nil
}

func (g *LinterRPCClient) TempfileName(req TempfileRequest) (string, error) {
	var resp string
	err := g.client.Call("Plugin.TempfileName", req, &resp)
	if err != nil {
		return "", err
	}
	return resp, nil
}

type LinterRPCServer struct {
	Impl Linter
}

func (s *LinterRPCServer) Setup(req LinterSetupRequest, resp *LinterProfile) error {
	var err error
	*resp, err = s.Impl.Setup(req)
	return err
}

func (s *LinterRPCServer) TempfileName(req TempfileRequest, resp *string) error {
	var err error
	*resp, err = s.Impl.TempfileName(req)
	return err
}

type LinterPlugin struct {
	Impl Linter
}

func (p *LinterPlugin) Server(*plugin.MuxBroker) (interface{}, error) {
	return &LinterRPCServer{Impl: p.Impl}, nil
}

func (LinterPlugin) Client(b *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &LinterRPCClient{client: c}, nil
}
