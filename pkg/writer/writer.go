package writer

import (
	"bufio"
	"os"
	"path"

	"github.com/coursetools/bbexport-go/pkg/utils"
)

type Writer struct {
	DirPath string
}

func NewWriter(dirPath string) (Writer, error) {
	err := utils.CreateFolderIfNotExists(dirPath)
	if err != nil {
		return Writer{}, err
	}

	return Writer{DirPath: dirPath}, nil
}

func (w *Writer) GetFilePath(filename string) string {
	return path.Join(w.DirPath, filename)
}

func (w *Writer) Read(filename string) ([]byte, error) {
	p := w.GetFilePath(filename)
	return os.ReadFile(p)
}

func (w *Writer) ReadLines(filename string) ([]string, error) {
	p := w.GetFilePath(filename)
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}

	defer f.Close()
	lines := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, nil
}

// WriteLines truncates any previous file: a rerun overwrites wholesale.
func (w *Writer) WriteLines(filename string, data []string) error {
	p := w.GetFilePath(filename)
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
	if err != nil {
		return err
	}

	defer f.Close()
	writer := bufio.NewWriter(f)
	for _, line := range data {
		_, err := writer.WriteString(line + "\n")
		if err != nil {
			return err
		}
	}
	return writer.Flush()
}

// Stream opens filename for sequential writing. Close flushes and closes the
// underlying file.
func (w *Writer) Stream(filename string) (*Stream, error) {
	p := w.GetFilePath(filename)
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
	if err != nil {
		return nil, err
	}

	return &Stream{f: f, Writer: bufio.NewWriter(f)}, nil
}

type Stream struct {
	*bufio.Writer
	f *os.File
}

func (s *Stream) Close() error {
	if err := s.Flush(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
