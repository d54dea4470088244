// Package pdfgen renders resume data to a PDF document on disk.
package pdfgen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

// ResumeFileName is the fixed output name; each render overwrites the last.
const ResumeFileName = "Resume.pdf"

// Experience is one work history entry on a resume.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is one education entry on a resume.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Resume carries the fields rendered into the document.
type Resume struct {
	FullName    string       `json:"fullname"`
	Email       string       `json:"email"`
	PhoneNumber string       `json:"phoneNumber"`
	Summary     string       `json:"summary"`
	Skills      []string     `json:"skills"`
	Experience  []Experience `json:"experience"`
	Education   []Education  `json:"education"`
}

// Renderer writes resumes into a fixed directory.
type Renderer struct {
	dir string
}

// NewRenderer creates a renderer that writes into dir.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// OutputPath returns the path the rendered resume is written to and served from.
func (r *Renderer) OutputPath() string {
	return filepath.Join(r.dir, ResumeFileName)
}

// Render lays out the resume and writes it to the output path.
func (r *Renderer) Render(resume Resume) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, resume.FullName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	contact := strings.TrimSpace(strings.Join(nonEmpty(resume.Email, resume.PhoneNumber), " | "))
	pdf.CellFormat(0, 6, contact, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if resume.Summary != "" {
		sectionHeader(pdf, "Summary")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, resume.Summary, "", "L", false)
		pdf.Ln(3)
	}

	if len(resume.Skills) > 0 {
		sectionHeader(pdf, "Skills")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, strings.Join(resume.Skills, ", "), "", "L", false)
		pdf.Ln(3)
	}

	if len(resume.Experience) > 0 {
		sectionHeader(pdf, "Experience")
		for _, exp := range resume.Experience {
			pdf.SetFont("Helvetica", "B", 11)
			heading := exp.Title
			if exp.Company != "" {
				heading = fmt.Sprintf("%s, %s", exp.Title, exp.Company)
			}
			pdf.CellFormat(0, 6, heading, "", 1, "L", false, 0, "")
			if exp.Duration != "" {
				pdf.SetFont("Helvetica", "I", 10)
				pdf.CellFormat(0, 5, exp.Duration, "", 1, "L", false, 0, "")
			}
			if exp.Description != "" {
				pdf.SetFont("Helvetica", "", 11)
				pdf.MultiCell(0, 5, exp.Description, "", "L", false)
			}
			pdf.Ln(2)
		}
		pdf.Ln(1)
	}

	if len(resume.Education) > 0 {
		sectionHeader(pdf, "Education")
		for _, edu := range resume.Education {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6, edu.Degree, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			line := strings.Join(nonEmpty(edu.Institution, edu.Year), ", ")
			pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
			pdf.Ln(2)
		}
	}

	return pdf.OutputFileAndClose(r.OutputPath())
}

func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 7, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
