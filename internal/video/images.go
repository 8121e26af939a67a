package video

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var reSlideNumber = regexp.MustCompile(`\d+`)

// extractImages pulls the slide JPEGs out of the archive into destDir
// and returns their paths in slide number order. The expected naming is
// スライド1.jpeg, スライド2.jpeg, ...; the first digit run in the file
// name is the slide number. Directories, macOS metadata and hidden
// files are ignored.
func extractImages(zipPath, destDir string) ([]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", zipPath, err)
	}
	defer r.Close()

	type entry struct {
		num  int
		file *zip.File
	}
	var entries []entry
	for _, f := range r.File {
		name := f.Name
		if strings.HasSuffix(name, "/") {
			continue
		}
		if strings.Contains(name, "__MACOSX") {
			continue
		}
		base := filepath.Base(name)
		if strings.HasPrefix(base, ".") {
			continue
		}
		lower := strings.ToLower(name)
		if !strings.HasSuffix(lower, ".jpeg") && !strings.HasSuffix(lower, ".jpg") {
			continue
		}
		digits := reSlideNumber.FindString(base)
		if digits == "" {
			continue
		}
		num, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		entries = append(entries, entry{num: num, file: f})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].num < entries[j].num })

	paths := make([]string, 0, len(entries))
	for i, e := range entries {
		dest := filepath.Join(destDir, fmt.Sprintf("slide_%03d.jpeg", i+1))
		if err := extractFile(e.file, dest); err != nil {
			return nil, err
		}
		paths = append(paths, dest)
	}
	return paths, nil
}

func extractFile(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %s in archive: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("extract %s: %w", f.Name, err)
	}
	return out.Close()
}
