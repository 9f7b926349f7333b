package message

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
	"time"

	"github.com/you-humble/carwash/internal/model"
)

const CompletionSubject = "Your Car Wash Service is Completed!"

var (
	//go:embed templates/completion_email.tmpl
	completionEmailFS       embed.FS
	completionEmailTemplate = template.Must(template.ParseFS(completionEmailFS, "templates/completion_email.tmpl"))

	//go:embed templates/job_completed.tmpl
	jobCompletedFS       embed.FS
	jobCompletedTemplate = template.Must(template.ParseFS(jobCompletedFS, "templates/job_completed.tmpl"))
)

type completionEmail struct {
	CustomerName  string
	VehicleNumber string
	ServiceType   string
	EmployeeName  string
	EmployeeEmail string
	BasePrice     string
	Discount      int
	FinalPrice    string
}

type jobCompleted struct {
	VehicleNumber string
	ServiceType   string
	CustomerName  string
	EmployeeName  string
	Elapsed       time.Duration
	BasePrice     string
	Discount      int
	FinalPrice    string
}

func BuildCompletionEmail(n model.CompletionNotice) (string, error) {
	var buf bytes.Buffer
	if err := completionEmailTemplate.Execute(&buf, completionEmail{
		CustomerName:  n.CustomerName,
		VehicleNumber: n.VehicleNumber,
		ServiceType:   humanize(n.ServiceType),
		EmployeeName:  n.EmployeeName,
		EmployeeEmail: n.EmployeeEmail,
		BasePrice:     n.Price.Base.StringFixed(2),
		Discount:      n.Price.Discount,
		FinalPrice:    n.Price.Final.StringFixed(2),
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func BuildJobCompleted(ev model.JobCompletedEvent) (string, error) {
	var buf bytes.Buffer
	if err := jobCompletedTemplate.Execute(&buf, jobCompleted{
		VehicleNumber: ev.VehicleNumber,
		ServiceType:   humanize(ev.ServiceType),
		CustomerName:  ev.CustomerName,
		EmployeeName:  ev.EmployeeName,
		Elapsed:       ev.EndedAt.Sub(ev.StartedAt).Round(time.Second),
		BasePrice:     ev.BasePrice.StringFixed(2),
		Discount:      ev.Discount,
		FinalPrice:    ev.FinalPrice.StringFixed(2),
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// humanize turns full_with_polish into "Full with polish".
func humanize(t model.ServiceType) string {
	s := strings.ReplaceAll(string(t), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
