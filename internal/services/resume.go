package services

import (
	"os"

	"github.com/ledongthuc/pdf"
)

// ResumeService answers availability probes for the downloadable resume and
// serves its path. The frontend checks availability before showing the
// download button, so a missing file must report cleanly rather than 404 at
// click time.
type ResumeService struct {
	path string
}

func NewResumeService(path string) *ResumeService {
	return &ResumeService{path: path}
}

func (s *ResumeService) Path() string {
	return s.path
}

// Status reports whether the resume exists and, when it parses as a PDF, its
// page count. A file that exists but fails to parse still counts as
// available with zero pages.
func (s *ResumeService) Status() (available bool, pages int) {
	info, err := os.Stat(s.path)
	if err != nil || info.IsDir() {
		return false, 0
	}

	f, reader, err := pdf.Open(s.path)
	if err != nil {
		return true, 0
	}
	defer f.Close()

	return true, reader.NumPage()
}
