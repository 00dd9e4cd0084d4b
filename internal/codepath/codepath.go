// Package codepath resolves where each generated artifact is written and
// which PHP namespace it declares.
package codepath

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"lcb/internal/buildtype"
	"lcb/internal/codestructure"
	"lcb/pkg/config"
)

var ErrCodePathNotFound = errors.New("code path not found")

const viewsRoot = "resources/views"

// Path locates one generated file relative to the project root. Paths use
// forward slashes.
type Path struct {
	dir       string
	name      string
	namespace string
}

func (p Path) Dir() string {
	return p.dir
}

func (p Path) Name() string {
	return p.name
}

func (p Path) File() string {
	return path.Join(p.dir, p.name)
}

func (p Path) Namespace() string {
	return p.namespace
}

// Class is the file name without its extensions.
func (p Path) Class() string {
	name, _, _ := strings.Cut(p.name, ".")
	return name
}

// FQN is the fully qualified class name.
func (p Path) FQN() string {
	if p.namespace == "" {
		return p.Class()
	}
	return p.namespace + `\` + p.Class()
}

// View is the dotted Blade view name, e.g. "products.form".
func (p Path) View() string {
	dir := strings.TrimPrefix(strings.TrimPrefix(p.dir, viewsRoot), "/")
	view := strings.ReplaceAll(dir, "/", ".")
	if view == "" {
		return p.Class()
	}
	return view + "." + p.Class()
}

type defaults struct {
	dir       string
	namespace string
	name      func(codestructure.NameStr) string
}

var conventions = map[buildtype.Type]defaults{
	buildtype.Model: {"app/Models", `App\Models`, func(n codestructure.NameStr) string {
		return n.UcFirstSingular() + ".php"
	}},
	buildtype.AddAction: {"app/Actions", `App\Actions`, func(n codestructure.NameStr) string {
		return "Add" + n.UcFirstSingular() + "Action.php"
	}},
	buildtype.EditAction: {"app/Actions", `App\Actions`, func(n codestructure.NameStr) string {
		return "Edit" + n.UcFirstSingular() + "Action.php"
	}},
	buildtype.Request: {"app/Http/Requests", `App\Http\Requests`, func(n codestructure.NameStr) string {
		return n.UcFirstSingular() + "Request.php"
	}},
	buildtype.Controller: {"app/Http/Controllers", `App\Http\Controllers`, func(n codestructure.NameStr) string {
		return n.UcFirstSingular() + "Controller.php"
	}},
	buildtype.Route: {"routes", "", func(n codestructure.NameStr) string {
		return n.SingularSnake() + ".php"
	}},
	buildtype.Form: {viewsRoot, "", func(codestructure.NameStr) string {
		return "form.blade.php"
	}},
	buildtype.DTO: {"app/DTO", `App\DTO`, func(n codestructure.NameStr) string {
		return n.UcFirstSingular() + "DTO.php"
	}},
}

type CodePath struct {
	paths map[buildtype.Type]Path
}

// New resolves the paths of every build type for entity, applying the
// per-type overrides of cfg.Paths.
func New(entity codestructure.NameStr, cfg config.OutputConfig) *CodePath {
	cp := &CodePath{paths: make(map[buildtype.Type]Path, len(conventions))}

	for buildType, d := range conventions {
		p := Path{
			dir:       d.dir,
			name:      d.name(entity),
			namespace: d.namespace,
		}

		if override, ok := cfg.Paths[string(buildType)]; ok {
			if override.Dir != "" {
				p.dir = strings.Trim(path.Clean(strings.ReplaceAll(override.Dir, `\`, "/")), "/")
				if d.namespace != "" {
					p.namespace = NamespaceFromDir(p.dir)
				}
			}
			if override.Namespace != "" {
				p.namespace = strings.Trim(override.Namespace, `\`)
			}
		}

		if buildType == buildtype.Form {
			p.dir = path.Join(p.dir, entity.PluralSnake())
		}

		cp.paths[buildType] = p
	}

	return cp
}

func (c *CodePath) Path(buildType buildtype.Type) (Path, error) {
	p, ok := c.paths[buildType]
	if !ok {
		return Path{}, fmt.Errorf("%w: %s", ErrCodePathNotFound, buildType)
	}
	return p, nil
}

// NamespaceFromDir follows the PSR-4 layout of a Laravel application:
// "app/Http/Controllers" becomes "App\Http\Controllers".
func NamespaceFromDir(dir string) string {
	var parts []string
	for _, part := range strings.Split(dir, "/") {
		if part == "" || part == "." {
			continue
		}
		parts = append(parts, strings.ToUpper(part[:1])+part[1:])
	}
	return strings.Join(parts, `\`)
}
