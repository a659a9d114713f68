package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cyberdetect/cdetect/internal/client/services"
	"github.com/cyberdetect/cdetect/internal/client/ui"
)

// Aadhaar runs the OCR workflow on the given image file, reporting stage
// progress as the pipeline advances and rendering the extracted card.
func (a *App) Aadhaar(ctx context.Context, args []string) error {
	s := a.style()

	if !a.isSignedIn() {
		fmt.Fprintln(a.out, s.Warn("Please sign in to use Aadhaar OCR."))
		a.Navigate("login")
		return services.ErrNotAuthenticated
	}

	if len(args) == 0 {
		fmt.Fprintln(a.out, s.Warn("Usage: aadhaar <image file> (jpg, jpeg, png or webp, up to 5 MB)"))
		return errors.New("missing file argument")
	}
	path := strings.Join(args, " ")

	a.mu.Lock()
	a.page = "aadhaar"
	a.mu.Unlock()
	a.renderHeader()

	record, err := a.ocr.Process(ctx, path, func(stage services.OCRStage) {
		fmt.Fprintf(a.out, "%s %s %d%%\n",
			s.Info.Render(progressBar(stage.Percent)),
			stage.Message, stage.Percent)
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedFile):
			fmt.Fprintln(a.out, s.Fail("Unsupported file type. Upload a jpg, jpeg, png or webp image."))
		case errors.Is(err, services.ErrFileTooLarge):
			fmt.Fprintln(a.out, s.Fail("That file is over the 5 MB limit."))
		default:
			fmt.Fprintln(a.out, s.Fail("Processing failed: "+err.Error()))
		}
		return err
	}

	fmt.Fprintln(a.out, s.Ok("Extraction complete."))
	tbl := ui.NewSimpleTable("Extracted card details", "Field", "Value")
	tbl.AddRow("Name", record.Name)
	tbl.AddRow("Aadhaar number", record.AadhaarNumber)
	tbl.AddRow("Date of birth", record.DateOfBirth)
	tbl.AddRow("Gender", record.Gender)
	tbl.AddRow("Address", record.Address)
	fmt.Fprint(a.out, tbl.View(s))
	return nil
}

// progressBar renders a ten-segment bar for the given percentage.
func progressBar(percent int) string {
	filled := percent / 10
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}
