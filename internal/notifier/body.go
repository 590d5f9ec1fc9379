package notifier

import (
	"fmt"
	"html"
	"strings"
)

const noImageProvided = "No image provided."

// subject builds the notification subject line. The store-assigned id is
// included when the record was saved, so the owner can find it later.
func subject(notice Notice) string {
	if notice.Saved {
		return fmt.Sprintf("New Tattoo Inquiry DB ID: %d", notice.InquiryID)
	}
	return "New Tattoo Inquiry"
}

// buildHTMLBody renders the HTML part of the notification.
func buildHTMLBody(notice Notice) string {
	b := new(strings.Builder)

	b.WriteString("<h4>Hello,<br>You have a new tattoo inquiry!</h4>\n")
	if notice.Saved {
		fmt.Fprintf(b, "<p><strong>Database Record ID:</strong> %d</p>\n", notice.InquiryID)
	} else {
		b.WriteString("<p><em>Database save failed - check logs</em></p>\n")
	}

	b.WriteString("<h4><u>Contact Details <br>(Saved to Database): </u></h4>\n")
	htmlRow(b, "Name", notice.Name)
	htmlRow(b, "Current Age", notice.Age)
	htmlRow(b, "Phone Number", notice.Phone)
	htmlRow(b, "Email", notice.Email)

	b.WriteString("<h4><u>Tattoo Details <br>(Email Only): </u></h4>\n")
	htmlRow(b, "Tattoo Placement", notice.Placement)
	htmlRow(b, "Estimated Size(inches)", notice.EstimatedSize)
	htmlRow(b, "Description", notice.Description)
	htmlRow(b, "Preferred Style", notice.Style)
	htmlRow(b, "Referral Source", notice.ReferralSource)

	b.WriteString("<h4><u>Images: </u></h4>\n")
	htmlRow(b, "Reference Image", attachmentName(notice, 0))
	htmlRow(b, "Placement Image", attachmentName(notice, 1))

	return b.String()
}

// buildTextBody renders the plain-text alternative part.
func buildTextBody(notice Notice) string {
	b := new(strings.Builder)

	b.WriteString("New Tattoo Inquiry")
	if notice.Saved {
		fmt.Fprintf(b, " - Database ID: %d", notice.InquiryID)
	}
	b.WriteString("\n\n")

	b.WriteString("Contact Details (Saved to Database):\n")
	fmt.Fprintf(b, "Name: %s\n", notice.Name)
	fmt.Fprintf(b, "Current Age: %s\n", notice.Age)
	fmt.Fprintf(b, "Phone Number: %s\n", notice.Phone)
	fmt.Fprintf(b, "Email: %s\n", notice.Email)
	b.WriteString("\n")

	b.WriteString("Tattoo Details (Email Only):\n")
	fmt.Fprintf(b, "Tattoo Placement: %s\n", notice.Placement)
	fmt.Fprintf(b, "Estimated Size: %s\n", notice.EstimatedSize)
	fmt.Fprintf(b, "Description: %s\n", notice.Description)
	fmt.Fprintf(b, "Preferred Style: %s\n", notice.Style)
	fmt.Fprintf(b, "Referral Source: %s\n", notice.ReferralSource)
	fmt.Fprintf(b, "Reference Image: %s\n", attachmentName(notice, 0))
	fmt.Fprintf(b, "Placement Image: %s\n", attachmentName(notice, 1))

	return b.String()
}

func htmlRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<p><strong>%s:</strong> %s</p>\n", label, html.EscapeString(value))
}

func attachmentName(notice Notice, index int) string {
	if index < len(notice.Attachments) {
		return notice.Attachments[index].FileName
	}
	return noImageProvided
}
