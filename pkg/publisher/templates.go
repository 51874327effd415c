package publisher

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/dustin/go-humanize"
)

const applicationUpdateSubject = "Application Update - Job portal"

var applicationUpdateTemplate = template.Must(template.New("application_update").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Application Update</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .status { font-weight: bold; text-transform: capitalize; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Your application was updated</h1>
        </div>
        <div class="content">
            <p>Your application for <strong>{{.JobTitle}}</strong>, sent {{.AppliedAgo}}, has a new status:</p>
            <p class="status">{{.Status}}</p>
            <p>Log in to the job portal to see the details.</p>
        </div>
        <div class="footer">
            <p>You received this email because you applied for a job on the job portal.</p>
        </div>
    </div>
</body>
</html>`))

type applicationUpdateData struct {
	JobTitle   string
	Status     string
	AppliedAgo string
}

// ApplicationStatusUpdate renders the mail sent to an applicant whose
// application status changed.
func ApplicationStatusUpdate(to, jobTitle, status string, appliedAt, now time.Time) (domain.Notification, error) {
	var body bytes.Buffer
	err := applicationUpdateTemplate.Execute(&body, applicationUpdateData{
		JobTitle:   jobTitle,
		Status:     status,
		AppliedAgo: humanize.RelTime(appliedAt, now, "ago", "from now"),
	})
	if err != nil {
		return domain.Notification{}, fmt.Errorf("failed to execute email template: %w", err)
	}
	return domain.Notification{
		To:      to,
		Subject: applicationUpdateSubject,
		HTML:    body.String(),
	}, nil
}
