package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cyberdetect/cdetect/internal/filex"
	"github.com/cyberdetect/cdetect/internal/logging"
)

// The OCR pipeline is deliberately simulated: the product never calls a
// backend for this feature, it stages progress on timers and presents demo
// output. The staged workflow below reproduces that contract.

const maxUploadSize = 5 << 20 // 5 MiB

var (
	// ErrUnsupportedFile rejects anything that is not an image upload.
	ErrUnsupportedFile = errors.New("unsupported file type, expected a jpg/jpeg/png/webp image")

	// ErrFileTooLarge rejects uploads above the 5 MiB cap.
	ErrFileTooLarge = errors.New("file exceeds the 5 MB upload limit")
)

// OCRStage is one step of the processing pipeline, reported to the observer
// as it completes.
type OCRStage struct {
	Percent int
	Message string
}

var ocrStages = []OCRStage{
	{20, "Scanning document..."},
	{40, "Detecting text regions..."},
	{60, "Extracting information..."},
	{80, "Verifying data..."},
	{100, "Processing complete!"},
}

// AadhaarRecord is the extracted demo output of the pipeline.
type AadhaarRecord struct {
	Name          string
	AadhaarNumber string
	DateOfBirth   string
	Gender        string
	Address       string
}

// OCRService runs the simulated Aadhaar extraction workflow.
type OCRService interface {
	// Process validates the upload, walks the staged pipeline (invoking
	// observe after each stage) and returns the extracted record. The
	// context cancels the run between stages.
	Process(ctx context.Context, path string, observe func(OCRStage)) (*AadhaarRecord, error)
}

type ocrService struct {
	stageDelay time.Duration
	log        logging.Logger
}

// NewOCRService builds the workflow with the given per-stage delay.
func NewOCRService(stageDelay time.Duration, log logging.Logger) OCRService {
	return &ocrService{stageDelay: stageDelay, log: log.With("component", "ocr")}
}

func validUploadExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

func (o *ocrService) Process(ctx context.Context, path string, observe func(OCRStage)) (*AadhaarRecord, error) {
	if !validUploadExt(path) {
		return nil, ErrUnsupportedFile
	}

	size, err := filex.FileSize(path)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	if size > maxUploadSize {
		return nil, ErrFileTooLarge
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	o.log.Info(ctx, "upload accepted", "file", filepath.Base(path), "size", size)

	for _, stage := range ocrStages {
		select {
		case <-time.After(o.stageDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if observe != nil {
			observe(stage)
		}
	}

	return demoRecord(path, content), nil
}

// demoRecord derives a stable demo extraction from the upload content, so
// the same image always yields the same record.
func demoRecord(path string, content []byte) *AadhaarRecord {
	sum := sha256.Sum256(content)

	digits := make([]byte, 12)
	for i := range digits {
		digits[i] = '0' + sum[i]%10
	}
	number := fmt.Sprintf("%s %s %s", digits[0:4], digits[4:8], digits[8:12])

	gender := "Female"
	if sum[12]%2 == 0 {
		gender = "Male"
	}

	year := 1960 + int(sum[13])%40
	month := 1 + int(sum[14])%12
	day := 1 + int(sum[15])%28

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := strings.NewReplacer("_", " ", "-", " ").Replace(base)

	return &AadhaarRecord{
		Name:          titleCase(name),
		AadhaarNumber: number,
		DateOfBirth:   fmt.Sprintf("%02d/%02d/%d", day, month, year),
		Gender:        gender,
		Address:       "Demo extraction, not a real identity record",
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] -= 32
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
