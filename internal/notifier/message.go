package notifier

import (
	"fmt"
	"path"
	"strings"
	"unicode/utf8"
)

const (
	subjectPrefix   = "📁 New File Upload: "
	maxSubjectRunes = 100
	maxBodyBytes    = 262144
	truncationMark  = "\n\n[message truncated]"
)

// BuildMessage composes the notification for one enriched record. The
// result always satisfies the transport limits: subject within 100
// characters, body within 256 KiB. Oversized input is truncated, never
// rejected. Pure transformation, no external calls.
func BuildMessage(rec *UploadRecord, meta FileMetadata, target string) NotificationMessage {
	return NotificationMessage{
		Subject: buildSubject(rec.FileName),
		Body:    truncateBody(buildBody(rec, meta)),
		Target:  target,
	}
}

func buildSubject(fileName string) string {
	subject := subjectPrefix + fileName
	if utf8.RuneCountInString(subject) <= maxSubjectRunes {
		return subject
	}

	budget := maxSubjectRunes - utf8.RuneCountInString(subjectPrefix)

	// Keep the extension visible when one fits in the budget; cut the
	// stem instead.
	ext := path.Ext(fileName)
	extRunes := []rune(ext)
	if len(extRunes) > 0 && len(extRunes) < budget {
		stemRunes := []rune(strings.TrimSuffix(fileName, ext))
		if len(stemRunes) > budget-len(extRunes) {
			stemRunes = stemRunes[:budget-len(extRunes)]
		}
		return subjectPrefix + string(stemRunes) + ext
	}

	nameRunes := []rune(fileName)
	return subjectPrefix + string(nameRunes[:budget])
}

func buildBody(rec *UploadRecord, meta FileMetadata) string {
	var b strings.Builder

	b.WriteString("📁 FILE UPLOAD NOTIFICATION\n\n")

	b.WriteString("📄 FILE DETAILS\n")
	fmt.Fprintf(&b, "   Name: %s\n", rec.FileName)
	fmt.Fprintf(&b, "   Size: %s\n", meta.FormattedSize)
	fmt.Fprintf(&b, "   Type: %s\n\n", meta.ContentType)

	b.WriteString("📍 LOCATION\n")
	fmt.Fprintf(&b, "   Bucket: %s\n", rec.SourceBucket)
	fmt.Fprintf(&b, "   Region: %s\n", rec.Region)
	fmt.Fprintf(&b, "   Path: %s\n\n", rec.ObjectKey)

	b.WriteString("⏰ TIMESTAMP\n")
	fmt.Fprintf(&b, "   Event Time: %s\n", rec.EventTime)
	fmt.Fprintf(&b, "   Event Type: %s\n\n", rec.EventName)

	b.WriteString("🔗 OBJECT\n")
	fmt.Fprintf(&b, "   s3://%s/%s\n\n", rec.SourceBucket, rec.ObjectKey)

	b.WriteString("This notification was generated automatically by the upload notifier service.")

	return b.String()
}

// truncateBody enforces the body byte limit, cutting from the tail so the
// leading sections survive, and appends a visible marker when it cuts.
func truncateBody(body string) string {
	if len(body) <= maxBodyBytes {
		return body
	}

	cut := maxBodyBytes - len(truncationMark)
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + truncationMark
}
