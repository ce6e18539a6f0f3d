package sim

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"runbox-api/pkg/sandbox"
)

// Provider is an in-memory sandbox implementation used by tests and local
// development. Responses can be scripted per language; unscripted languages
// echo the submission's input as a successful run.
type Provider struct {
	mu sync.Mutex

	name      string
	languages []string
	scripted  map[string]*sandbox.ExecutionResponse
	submitted []*sandbox.RunRequest
}

// New constructs a simulator that accepts the given languages.
func New(languages ...string) *Provider {
	return NewNamed("sim", languages...)
}

// NewNamed constructs a simulator with an explicit provider name.
func NewNamed(name string, languages ...string) *Provider {
	if len(languages) == 0 {
		languages = []string{"python3", "c", "cpp"}
	}
	return &Provider{
		name:      name,
		languages: languages,
		scripted:  make(map[string]*sandbox.ExecutionResponse),
	}
}

func init() {
	sandbox.RegisterProvider("sim", func(name string, cfg *sandbox.ProviderConfig) (sandbox.Provider, error) {
		return NewNamed(name), nil
	})
}

func canonical(lang string) string { return strings.ToLower(strings.TrimSpace(lang)) }

// Script fixes the response returned for submissions in the given language.
func (p *Provider) Script(language string, resp *sandbox.ExecutionResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scripted[canonical(language)] = resp
}

// Submissions returns every request seen so far.
func (p *Provider) Submissions() []*sandbox.RunRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*sandbox.RunRequest, len(p.submitted))
	copy(out, p.submitted)
	return out
}

// Name implements sandbox.Provider.
func (p *Provider) Name() string { return p.name }

// Submit implements sandbox.Provider.
func (p *Provider) Submit(ctx context.Context, req *sandbox.RunRequest) (*sandbox.ExecutionResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("sim: run request is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.submitted = append(p.submitted, req)

	lang := canonical(req.Language)
	if resp, ok := p.scripted[lang]; ok {
		clone := *resp
		return &clone, nil
	}

	for _, known := range p.languages {
		if canonical(known) == lang {
			return &sandbox.ExecutionResponse{
				Error:  sandbox.ErrorOK,
				Result: sandbox.ResultSuccess,
				Output: req.Input,
			}, nil
		}
	}
	return &sandbox.ExecutionResponse{Error: sandbox.ErrorUnknownLanguage}, nil
}

// Languages implements sandbox.Provider.
func (p *Provider) Languages(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.languages))
	copy(out, p.languages)
	return out, nil
}
