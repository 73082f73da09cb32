// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/hyperdrive/internal/config"
	"gopkg.in/yaml.v3"
)

//go:embed templates
var templates embed.FS

const (
	templatesRoot  = "templates"
	configFileName = "config.yaml"
)

// renamed maps template names to the names written into the project.
var renamed = map[string]string{
	"dotenv": ".env",
}

// initProject creates dir and fills it with the project templates and a
// config.yaml listing every option.
func initProject(out io.Writer, defs config.Definitions, dir string) error {
	if _, err := os.Stat(dir); err == nil {
		fmt.Fprintln(out, errorStyle.Render("Directory already exists!"))
		return fmt.Errorf("%w: %s", ErrProjectExists, dir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, successStyle.Render("Creating project: "+filepath.Base(abs)))
	fmt.Fprintf(out, "=> %s\n", accentStyle.Render(abs))

	if err = os.MkdirAll(abs, 0o755); err != nil {
		return err
	}

	if err = copyTemplates(out, abs); err != nil {
		return err
	}

	body, err := renderConfig(defs)
	if err != nil {
		return err
	}
	if err = os.WriteFile(filepath.Join(abs, configFileName), body, 0o600); err != nil {
		return err
	}
	fmt.Fprintf(out, "[+]  %s\n", accentStyle.Render(configFileName))

	fmt.Fprintln(out, successStyle.Render("=> Completed"))
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("==> Run 'hyperdrive -c %s' in the directory %s", configFileName, dir)))
	return nil
}

func copyTemplates(out io.Writer, dst string) error {
	return fs.WalkDir(templates, templatesRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, templatesRoot), "/")
		if rel == "" {
			return nil
		}

		name := path.Base(rel)
		if to, ok := renamed[name]; ok {
			rel = path.Join(path.Dir(rel), to)
		}
		target := filepath.Join(dst, filepath.FromSlash(rel))

		if d.IsDir() {
			fmt.Fprintf(out, "==>  %s/\n", accentStyle.Render(rel))
			return os.MkdirAll(target, 0o755)
		}

		body, err := templates.ReadFile(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "[+]  %s\n", accentStyle.Render(rel))
		return os.WriteFile(target, body, 0o644)
	})
}

// renderConfig writes every option as YAML with its help text, environment
// variable and default as a comment. Fresh keys are generated for appId and
// masterKey; every other option is null, which resolves like an unset key so
// environment variables keep working.
func renderConfig(defs config.Definitions) ([]byte, error) {
	generated := map[string]string{
		config.KeyAppID:     config.RandomKey(10),
		config.KeyMasterKey: config.RandomKey(12),
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode}

	var encodeErr error
	defs.Each(func(def config.Definition) {
		if encodeErr != nil {
			return
		}

		var value any
		if v, ok := generated[def.Name]; ok {
			value = v
		}

		key := &yaml.Node{
			Kind:        yaml.ScalarNode,
			Value:       def.Name,
			HeadComment: configComment(def),
		}
		val := &yaml.Node{}
		if encodeErr = val.Encode(value); encodeErr != nil {
			return
		}
		mapping.Content = append(mapping.Content, key, val)
	})
	if encodeErr != nil {
		return nil, encodeErr
	}

	doc := &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: "# Hyperdrive configuration. Load with: hyperdrive -c " + configFileName,
		Content:     []*yaml.Node{mapping},
	}
	return yaml.Marshal(doc)
}

func configComment(def config.Definition) string {
	help := def.Help
	if help == "" {
		help = "No description."
	}
	return fmt.Sprintf("# %s\n# env: %s, default: %s", help, def.Env, def.Default.Describe())
}
