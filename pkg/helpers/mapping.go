package helpers

import (
	"fmt"
	"strings"

	"github.com/oksasatya/readlog/pkg/mailer"
	mailtpl "github.com/oksasatya/readlog/pkg/mailer/templates"
)

// SubjectFor returns the default subject line for a template name.
func SubjectFor(template string) string {
	switch strings.ToLower(template) {
	case mailtpl.Welcome:
		return "Welcome to your reading log"
	default:
		return "Notification"
	}
}

// EnsureRecipient fills Email/Name template data from the job when missing.
func EnsureRecipient(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["Email"] = job.To
	}
	if v, ok := job.Data["Name"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["Name"] = job.To
	}
}
