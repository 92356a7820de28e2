package server

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"strings"
)

// Descriptor is the resolved view of the project the development server and
// the build consume: where sources live, where to listen, what to forward,
// and where artifacts go. It is built once at startup and never mutated.
type Descriptor struct {
	Root           string
	Port           int
	ProxyRules     map[string]string
	BuildOutputDir string
}

// Default returns the built-in descriptor.
func Default() Descriptor {
	return Descriptor{
		Root:           DefaultRoot,
		Port:           DefaultPort,
		ProxyRules:     DefaultProxyRules(),
		BuildOutputDir: DefaultOutDir,
	}
}

// Clone returns a copy that shares no state with d.
func (d Descriptor) Clone() Descriptor {
	d.ProxyRules = maps.Clone(d.ProxyRules)
	return d
}

// ValidationError collects every problem found in a descriptor.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid descriptor: " + strings.Join(e.Problems, "; ")
}

// ErrInvalidOrigin is returned by ParseOrigin for values that are not
// scheme://host[:port] origins.
var ErrInvalidOrigin = errors.New("invalid origin")

// Validate checks the descriptor invariants.
func (d Descriptor) Validate() error {
	var problems []string

	if strings.TrimSpace(d.Root) == "" {
		problems = append(problems, "root must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		problems = append(problems, fmt.Sprintf("port %d out of range [1, 65535]", d.Port))
	}
	if strings.TrimSpace(d.BuildOutputDir) == "" {
		problems = append(problems, "build output dir must not be empty")
	}
	for _, prefix := range sortedKeys(d.ProxyRules) {
		if !strings.HasPrefix(prefix, "/") {
			problems = append(problems, fmt.Sprintf("proxy prefix %q must start with /", prefix))
		}
		if _, err := ParseOrigin(d.ProxyRules[prefix]); err != nil {
			problems = append(problems, fmt.Sprintf("proxy target for %q: %v", prefix, err))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ParseOrigin parses an origin such as http://localhost:5000.
// A trailing slash is tolerated; any other path, query or fragment is not.
func ParseOrigin(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidOrigin, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w %q: scheme must be http or https", ErrInvalidOrigin, raw)
	}
	if u.Host == "" || u.Hostname() == "" {
		return nil, fmt.Errorf("%w %q: missing host", ErrInvalidOrigin, raw)
	}
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return nil, fmt.Errorf("%w %q: must be scheme://host[:port]", ErrInvalidOrigin, raw)
	}
	u.Path = ""
	return u, nil
}
