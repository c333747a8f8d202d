package services

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"langham-hms/apperror"
	"langham-hms/models"
	"langham-hms/utils"
)

// AllocationSource is the read side the report needs.
type AllocationSource interface {
	ListActive() []models.Allocation
}

// BackupResult describes a BackupAndClear call. Created is false when the
// report file was empty and nothing was copied.
type BackupResult struct {
	Created    bool
	BackupPath string
	ReportPath string
}

// ReportService writes the allocation report to LHMS_<session>.txt and
// manages its backups. File operations are serialised.
type ReportService struct {
	mu        sync.Mutex
	source    AllocationSource
	dir       string
	sessionID string
	logger    *logrus.Logger
	now       func() time.Time
}

func NewReportService(source AllocationSource, dir, sessionID string, logger *logrus.Logger) *ReportService {
	return &ReportService{
		source:    source,
		dir:       dir,
		sessionID: sessionID,
		logger:    logger,
		now:       time.Now,
	}
}

// Path is the report file location.
func (s *ReportService) Path() string {
	return filepath.Join(s.dir, fmt.Sprintf("LHMS_%s.txt", s.sessionID))
}

func (s *ReportService) backupPath(at time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("LHMS_%s_Backup_%s.txt", s.sessionID, at.Format("20060102_150405")))
}

// Render returns the report for the current allocations.
func (s *ReportService) Render() []byte {
	var buf bytes.Buffer
	utils.WriteAllocationReport(&buf, s.source.ListActive(), s.now())
	return buf.Bytes()
}

// Save overwrites the report file and returns its path.
func (s *ReportService) Save() (string, error) {
	data := s.Render()

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path()
	if err := writeFile(path, data); err != nil {
		return "", apperror.Wrap(apperror.KindIOFailure, fmt.Sprintf("failed to write %s", path), err)
	}
	s.logger.WithField("path", path).Info("allocation report saved")
	return path, nil
}

// Display returns the report file content verbatim.
func (s *ReportService) Display() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path()
	content, err := readReport(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", apperror.New(apperror.KindIOFailure, "File is empty!")
	}
	return content, nil
}

// BackupAndClear copies the report into a timestamped backup file under a
// BACKUP CREATED ON header and then truncates the report. An empty report is
// left alone.
func (s *ReportService) BackupAndClear() (BackupResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path()
	res := BackupResult{ReportPath: path}

	content, err := readReport(path)
	if err != nil {
		return res, err
	}
	if strings.TrimSpace(content) == "" {
		s.logger.WithField("path", path).Info("report empty, backup skipped")
		return res, nil
	}

	now := s.now()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "BACKUP CREATED ON: %s\n", now.Format(utils.TimestampLayout))
	buf.WriteString(strings.Repeat("=", 50) + "\n")
	buf.WriteString(content)

	backup := s.backupPath(now)
	if err := writeFile(backup, buf.Bytes()); err != nil {
		return res, apperror.Wrap(apperror.KindIOFailure, fmt.Sprintf("failed to write %s", backup), err)
	}
	if err := writeFile(path, nil); err != nil {
		return res, apperror.Wrap(apperror.KindIOFailure, fmt.Sprintf("failed to clear %s", path), err)
	}

	res.Created = true
	res.BackupPath = backup
	s.logger.WithFields(logrus.Fields{"path": path, "backup": backup}).Info("report backed up and cleared")
	return res, nil
}

func readReport(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", apperror.New(apperror.KindIOFailure, fmt.Sprintf("File %s does not exist!", path))
	}
	if err != nil {
		return "", apperror.Wrap(apperror.KindIOFailure, fmt.Sprintf("failed to read %s", path), err)
	}
	return string(data), nil
}

// writeFile truncates path and writes data, reporting a failed close.
func writeFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}
