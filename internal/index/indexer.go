package index

import (
	"fmt"

	"github.com/Zuo-Peng/hl7-viewer/internal/hl7"
	"github.com/Zuo-Peng/hl7-viewer/internal/scan"
	"github.com/rs/zerolog"
)

type Stats struct {
	Scanned int
	Updated int
	Skipped int
	Pruned  int
	Errors  int
}

func (s Stats) String() string {
	return fmt.Sprintf("scanned=%d updated=%d skipped=%d pruned=%d errors=%d",
		s.Scanned, s.Updated, s.Skipped, s.Pruned, s.Errors)
}

// IndexAll catalogues every HL7 file under roots. Files that fail to load
// are counted and logged; they do not stop the run.
func IndexAll(db *DB, roots, exts []string, log zerolog.Logger) (Stats, error) {
	var stats Stats
	roots = absPaths(roots)

	files, err := scan.ScanRoots(roots, exts)
	if err != nil {
		return stats, fmt.Errorf("scan: %w", err)
	}
	stats.Scanned = len(files)

	// track which files we see, for pruning
	seen := make(map[string]struct{})

	for _, fi := range files {
		seen[fi.Path] = struct{}{}

		needs, err := needsUpdate(db, fi)
		if err != nil {
			stats.Errors++
			log.Warn().Err(err).Str("path", fi.Path).Msg("lookup")
			continue
		}
		if !needs {
			stats.Skipped++
			continue
		}

		if err := indexFile(db, fi); err != nil {
			stats.Errors++
			log.Warn().Err(err).Str("path", fi.Path).Msg("index")
			continue
		}
		log.Debug().Str("path", fi.Path).Msg("indexed")
		stats.Updated++
	}

	pruned, err := pruneFiles(db, roots, seen)
	if err != nil {
		return stats, fmt.Errorf("prune: %w", err)
	}
	stats.Pruned = pruned

	return stats, nil
}

func needsUpdate(db *DB, fi scan.FileInfo) (bool, error) {
	info, err := db.GetFileInfo(fi.Path)
	if err != nil {
		return false, err
	}
	if info == nil {
		return true, nil // new file
	}
	return info.Mtime != fi.Mtime || info.Size != fi.Size, nil
}

func indexFile(db *DB, fi scan.FileInfo) error {
	text, err := hl7.Load(fi.Path)
	if err != nil {
		return err
	}
	msg := hl7.Parse(text)
	r := NewFileRecord(fi.Path, msg, hl7.ExtractHeader(msg), hl7.ExtractPatient(msg))
	r.Mtime = fi.Mtime
	r.Size = fi.Size
	return db.Upsert(r)
}

// pruneFiles removes rows under the scanned roots whose file is gone.
// Files recorded from elsewhere (opened directly) are left alone, as are
// opened files that still exist and everything under a root that could
// not be read.
func pruneFiles(db *DB, roots []string, seen map[string]struct{}) (int, error) {
	all, err := db.AllPaths()
	if err != nil {
		return 0, err
	}
	live := liveRoots(roots)

	pruned := 0
	for path, opened := range all {
		if _, ok := seen[path]; ok {
			continue
		}
		if !underAny(path, live) {
			continue
		}
		if opened && fileExists(path) {
			continue
		}
		if err := db.DeleteFile(path); err != nil {
			return pruned, err
		}
		pruned++
	}
	return pruned, nil
}
