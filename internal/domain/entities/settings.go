package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rios0rios0/gitforge/pkg/config/domain/helpers"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// DefaultBranch is checked out before pulling when a folder sets no branch.
const DefaultBranch = "master"

const appName = "reposync"

// Settings is the parsed settings file: one entry per destination folder.
type Settings struct {
	Entries []FolderConfig
}

// FolderConfig describes a destination folder and the repositories cloned into it.
type FolderConfig struct {
	Base   string   `yaml:"base"`   // Base URL, repositories resolve to {base}/{name}.git
	Folder string   `yaml:"folder"` // Destination path, supports ~ and ${ENV_VAR}
	Repos  []string `yaml:"repos"`
	Branch string   `yaml:"branch"` // Optional, defaults to DefaultBranch
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a settings file. Files ending in ".hcl" are
// parsed as HCL, everything else as YAML.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var entries []FolderConfig
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		entries, err = parseHCL(data, path)
	} else {
		entries, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].Folder, err = expandPath(entries[i].Folder); err != nil {
			return nil, fmt.Errorf("entries[%d].folder: %w", i, err)
		}
	}

	settings := &Settings{Entries: entries}
	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// ToFolders maps the settings into the folder model. A non-empty
// branchOverride replaces the branch of every folder.
func (s *Settings) ToFolders(branchOverride string) []Folder {
	folders := make([]Folder, 0, len(s.Entries))
	for _, entry := range s.Entries {
		branch := entry.Branch
		if branchOverride != "" {
			branch = branchOverride
		}
		if branch == "" {
			branch = DefaultBranch
		}

		repos := make([]Repository, 0, len(entry.Repos))
		for _, name := range entry.Repos {
			repos = append(repos, NewRepository(name, entry.Base))
		}

		folders = append(folders, Folder{
			Path:         entry.Folder,
			Branch:       branch,
			Repositories: repos,
		})
	}
	return folders
}

// FindConfigFile searches the standard locations for a YAML settings file
// and then for reposync.hcl in the same locations.
func FindConfigFile() (string, error) {
	if path, err := helpers.FindConfigFile(appName); err == nil {
		return path, nil
	}

	locations := []string{".", ".config", "configs"}
	if homeDir, homeErr := os.UserHomeDir(); homeErr == nil && homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}
	for _, loc := range locations {
		p := filepath.Join(loc, appName+".hcl")
		if _, statErr := os.Stat(p); statErr == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w in default locations", helpers.ErrConfigFileNotFound)
}

func parseYAML(data []byte) ([]FolderConfig, error) {
	var entries []FolderConfig
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return entries, nil
}

// parseHCL reads blocks shaped as:
//
//	folder "~/projects/acme" {
//	  base   = "https://github.com/acme"
//	  repos  = ["api", "web"]
//	  branch = "main"
//	}
func parseHCL(data []byte, path string) ([]FolderConfig, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	content, diags := file.Body.Content(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "folder", LabelNames: []string{"path"}},
		},
	})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	entries := make([]FolderConfig, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		attrs, attrDiags := block.Body.JustAttributes()
		if attrDiags.HasErrors() {
			return nil, fmt.Errorf("folder %q: %s", block.Labels[0], attrDiags.Error())
		}

		entry := FolderConfig{Folder: block.Labels[0]}
		var err error
		if entry.Base, err = stringAttribute(attrs, "base"); err != nil {
			return nil, fmt.Errorf("folder %q: %w", entry.Folder, err)
		}
		if entry.Branch, err = stringAttribute(attrs, "branch"); err != nil {
			return nil, fmt.Errorf("folder %q: %w", entry.Folder, err)
		}
		if entry.Repos, err = stringListAttribute(attrs, "repos"); err != nil {
			return nil, fmt.Errorf("folder %q: %w", entry.Folder, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func attributeValue(attrs hcl.Attributes, name string) (cty.Value, bool, error) {
	attr, ok := attrs[name]
	if !ok {
		return cty.NilVal, false, nil
	}
	val, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() {
		return cty.NilVal, false, fmt.Errorf("%s: %s", name, diags.Error())
	}
	if val.IsNull() || !val.IsKnown() {
		return cty.NilVal, false, nil
	}
	return val, true, nil
}

func stringAttribute(attrs hcl.Attributes, name string) (string, error) {
	val, ok, err := attributeValue(attrs, name)
	if err != nil || !ok {
		return "", err
	}
	if val.Type() != cty.String {
		return "", fmt.Errorf("%s must be a string", name)
	}
	return val.AsString(), nil
}

func stringListAttribute(attrs hcl.Attributes, name string) ([]string, error) {
	val, ok, err := attributeValue(attrs, name)
	if err != nil || !ok {
		return nil, err
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("%s must be a list of strings", name)
	}

	var result []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() || elem.Type() != cty.String {
			return nil, fmt.Errorf("%s must be a list of strings", name)
		}
		result = append(result, elem.AsString())
	}
	return result, nil
}

// expandPath resolves ${ENV_VAR} references and a leading "~". A reference
// to an unset variable is an error.
func expandPath(raw string) (string, error) {
	if raw == "" {
		return raw, nil
	}

	var unset []string
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		val, ok := os.LookupEnv(varName)
		if !ok || val == "" {
			unset = append(unset, varName)
		}
		return val
	})
	if len(unset) > 0 {
		return "", fmt.Errorf("environment variable %q is not set", unset[0])
	}

	if resolved == "~" || strings.HasPrefix(resolved, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			logger.Warnf("Failed to resolve home directory for %q: %v", resolved, err)
			return resolved, nil
		}
		resolved = filepath.Join(homeDir, strings.TrimPrefix(resolved, "~"))
	}

	return resolved, nil
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if len(settings.Entries) == 0 {
		return errors.New("at least one folder must be configured")
	}

	for i, entry := range settings.Entries {
		if entry.Folder == "" {
			return fmt.Errorf("entries[%d].folder is required", i)
		}
		if entry.Base == "" {
			return fmt.Errorf("entries[%d].base is required", i)
		}
		if len(entry.Repos) == 0 {
			return fmt.Errorf("entries[%d].repos must have at least one entry", i)
		}
		for j, name := range entry.Repos {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("entries[%d].repos[%d] must not be empty", i, j)
			}
			// recreate deletes {folder}/{name}, so it must be strictly below the folder
			if !filepath.IsLocal(name) || filepath.Clean(name) == "." {
				return fmt.Errorf("entries[%d].repos[%d] %q must be a path inside the folder", i, j, name)
			}
		}
	}

	return nil
}
