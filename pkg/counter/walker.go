package counter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/marcoimbee/pyloc/pkg/language"
	"github.com/marcoimbee/pyloc/pkg/logger"
)

// fileEntry is one eligible file produced by the walk, tagged with the
// traversal sequence number used for longest-file tie-breaking.
type fileEntry struct {
	path string
	rel  string
	ext  string
	rule language.Rule
	seq  int
}

// walk traverses the tree depth-first and calls visit for every eligible
// file in traversal order. Ignored directories are pruned before descending,
// symlinks are never followed, and one walk makes exactly one pass.
func (c *counter) walk(root string, visit func(fileEntry) error) error {
	seq := 0
	return c.walkDir(root, root, &seq, visit)
}

func (c *counter) walkDir(root, dir string, seq *int, visit func(fileEntry) error) error {
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		c.log.WithFields(logger.Fields{
			"error": err,
			"path":  dir,
		}).Warn("Failed to read directory")
		return nil
	}

	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())

		rel, err := filepath.Rel(root, entryPath)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)

		if entry.Mode()&os.ModeSymlink != 0 {
			c.log.WithFields(logger.Fields{
				"path": entryPath,
			}).Debug("Skipping symlink")
			continue
		}

		if entry.IsDir() {
			if c.matcher.Match(rel, true) {
				c.log.WithFields(logger.Fields{
					"path": rel,
				}).Debug("Pruning ignored directory")
				continue
			}
			if err := c.walkDir(root, entryPath, seq, visit); err != nil {
				return err
			}
			continue
		}

		rule, ok := c.ruleForFile(entry.Name())
		if !ok {
			continue
		}

		if c.matcher.Match(rel, false) {
			c.log.WithFields(logger.Fields{
				"path": rel,
			}).Debug("Ignoring file")
			continue
		}

		fe := fileEntry{
			path: entryPath,
			rel:  rel,
			ext:  language.Normalize(filepath.Ext(entry.Name())),
			rule: rule,
			seq:  *seq,
		}
		*seq++
		c.stats.AddFilesFound(1)

		if err := visit(fe); err != nil {
			return err
		}
	}

	return nil
}

// ruleForFile decides whether a file participates in the count and which
// comment rule applies. With an explicit include-list, listed extensions are
// counted even when unknown to the table, using the fallback rule. Without
// one, only extensions with a known rule pass through.
func (c *counter) ruleForFile(name string) (language.Rule, bool) {
	ext := language.Normalize(filepath.Ext(name))
	if ext == "" || strings.HasPrefix(name, ".") && filepath.Ext(name) == name {
		return language.Rule{}, false
	}

	if len(c.include) > 0 {
		if !c.include[ext] {
			return language.Rule{}, false
		}
		if rule, ok := language.RulesFor(ext); ok {
			return rule, true
		}
		return language.FallbackRule, true
	}

	return language.RulesFor(ext)
}
