package rewrite

import (
	"os"

	"go.uber.org/zap"

	"gesfix/internal/affix"
	"gesfix/internal/locate"
)

// Runner drives the locate -> reduce -> rewrite -> backup -> write pipeline.
// A zero BackupSuffix or Extension is invalid; callers populate Runner from
// config. Files are processed one at a time, independently; a failure in one
// file never aborts the batch.
type Runner struct {
	Log          *zap.Logger
	Extension    string
	BackupSuffix string
	SkipDirs     []string

	// DryRun reports matches without creating backups or writing files.
	DryRun bool
}

// Failure is a per-file error surfaced in the summary.
type Failure struct {
	Path string
	Err  error
}

// Summary is the end-of-run accounting.
type Summary struct {
	Scanned  int // project files found under the root
	Matched  int // files containing at least one occurrence
	Modified int // files rewritten on disk
	BackedUp int // new backups created this run
	Failures []Failure
}

// Run rewrites every project file under root, replacing the reduced core of
// oldPath with that of newPath. The returned error is fatal (invalid root or
// aborted traversal); everything per-file lands in the summary instead.
func (r *Runner) Run(root, oldPath, newPath string) (Summary, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}

	var sum Summary
	red := affix.Reduce(oldPath, newPath)
	if red.Empty() {
		log.Info("old and new paths share no differing core, nothing to replace")
	} else {
		log.Info("reduced path pair",
			zap.String("old_core", red.OldCore),
			zap.String("new_core", red.NewCore),
			zap.String("common_prefix", red.Prefix),
			zap.String("common_suffix", red.Suffix))
	}

	err := locate.Each(root, r.Extension, r.SkipDirs, func(path string) error {
		sum.Scanned++
		if red.Empty() {
			return nil
		}
		if err := r.processFile(log, path, red, &sum); err != nil {
			log.Error("skipping file", zap.String("path", path), zap.Error(err))
			sum.Failures = append(sum.Failures, Failure{Path: path, Err: err})
		}
		return nil
	})
	if err != nil {
		return sum, err
	}
	return sum, nil
}

func (r *Runner) processFile(log *zap.Logger, path string, red affix.Reduction, sum *Summary) error {
	doc, err := ParseFile(path)
	if err != nil {
		return err
	}

	reps := doc.RewriteAttrs(red.OldCore, red.NewCore)
	if len(reps) == 0 {
		log.Debug("no occurrences", zap.String("path", path))
		return nil
	}
	sum.Matched++

	for _, rep := range reps {
		log.Info("rewriting asset path",
			zap.String("path", path),
			zap.String("element", rep.Element),
			zap.String("attr", rep.Attr),
			zap.String("from", rep.Old),
			zap.String("to", rep.New))
		if target, ok := localTarget(rep.New); ok {
			if _, err := os.Stat(target); err != nil {
				log.Warn("rewritten asset not found on disk",
					zap.String("path", path),
					zap.String("asset", target))
			}
		}
	}

	if r.DryRun {
		log.Info("dry-run, not writing", zap.String("path", path), zap.Int("replacements", len(reps)))
		return nil
	}

	created, err := EnsureBackup(path, r.BackupSuffix)
	if err != nil {
		return err
	}
	if created {
		sum.BackedUp++
		log.Info("backup created", zap.String("path", BackupPath(path, r.BackupSuffix)))
	} else {
		log.Debug("backup already exists", zap.String("path", BackupPath(path, r.BackupSuffix)))
	}

	if err := doc.Save(); err != nil {
		return err
	}
	sum.Modified++
	return nil
}
