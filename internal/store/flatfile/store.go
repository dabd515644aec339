// internal/store/flatfile/store.go
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/registrar/internal/models"
	"github.com/shrimpsizemoose/registrar/internal/store"
)

// FlatFileStore keeps one comma-delimited text file per collection.
// Rewrites truncate in place; a crash mid-rewrite can lose records.
type FlatFileStore struct {
	studentsPath string
	coursesPath  string
	passedPath   string
}

func NewFlatFileStore(config *store.FileConfig) (*FlatFileStore, error) {
	dir := config.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return &FlatFileStore{
		studentsPath: filepath.Join(dir, orDefault(config.StudentsFile, "students.txt")),
		coursesPath:  filepath.Join(dir, orDefault(config.CoursesFile, "courses.txt")),
		passedPath:   filepath.Join(dir, orDefault(config.PassedFile, "passed.txt")),
	}, nil
}

func (s *FlatFileStore) Close() error {
	return nil
}

func (s *FlatFileStore) LoadCourses() ([]models.Course, error) {
	return loadLines(s.coursesPath, models.ParseCourseLine)
}

func (s *FlatFileStore) LoadStudents() ([]models.Student, error) {
	return loadLines(s.studentsPath, models.ParseStudentLine)
}

func (s *FlatFileStore) LoadPassed() ([]models.PassedRecord, error) {
	return loadLines(s.passedPath, models.ParsePassedLine)
}

func (s *FlatFileStore) AppendStudent(student models.Student) error {
	if err := appendLine(s.studentsPath, student.Line()); err != nil {
		return fmt.Errorf("failed to append student %s: %w", student.ID, err)
	}
	return nil
}

func (s *FlatFileStore) AppendPassed(record models.PassedRecord) error {
	if err := appendLine(s.passedPath, record.Line()); err != nil {
		return fmt.Errorf("failed to append passed record %s/%s: %w", record.Course, record.Student, err)
	}
	return nil
}

func (s *FlatFileStore) RewritePassed(passed []models.PassedRecord) error {
	f, err := os.Create(s.passedPath)
	if err != nil {
		return fmt.Errorf("failed to rewrite %s: %w", s.passedPath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, r := range passed {
		if _, err := w.WriteString(r.Line() + "\n"); err != nil {
			return fmt.Errorf("failed to rewrite %s: %w", s.passedPath, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to rewrite %s: %w", s.passedPath, err)
	}
	logger.Info.Printf("Rewrote %d passed records to %s", len(passed), s.passedPath)
	return f.Close()
}

// loadLines treats a missing file as empty and skips lines parse rejects.
func loadLines[T any](path string, parse func(string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug.Printf("%s does not exist, starting empty", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	// Lines have no length limit; a course may list any number of teachers.
	var out []T
	r := bufio.NewReader(f)
	for lineNo := 1; ; lineNo++ {
		raw, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("failed to read %s: %w", path, readErr)
		}

		if line := strings.TrimSpace(raw); line != "" {
			item, err := parse(line)
			if err != nil {
				logger.Debug.Printf("Skipping %s:%d: %v", path, lineNo, err)
			} else {
				out = append(out, item)
			}
		}

		if readErr != nil {
			return out, nil
		}
	}
}

// appendLine starts a new line first when the file does not end in one,
// so a hand-edited file without a trailing newline keeps its last record.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return err
	}
	needsNewline, err := missingTrailingNewline(f)
	if err != nil {
		f.Close()
		return err
	}
	if needsNewline {
		line = "\n" + line
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func missingTrailingNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
