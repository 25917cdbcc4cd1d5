package mailer

import "html/template"

type welcomeData struct {
	Name       string
	ProfileURL string
}

type commentData struct {
	RecipientName string
	CommenterName string
	PostURL       string
	Comment       string
}

type connectionAcceptedData struct {
	SenderName    string
	RecipientName string
	ProfileURL    string
}

var templates = template.Must(template.New("mail").Parse(`
{{define "welcome"}}<!DOCTYPE html>
<html><body style="font-family: Arial, sans-serif; color: #333;">
<h1 style="color: #0077B5;">Welcome to TalentNest!</h1>
<p>Hello {{.Name}},</p>
<p>We're thrilled to have you join our professional community. Start by completing your profile and connecting with colleagues.</p>
<p><a href="{{.ProfileURL}}" style="background-color: #0077B5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px;">Complete Your Profile</a></p>
<p>Best regards,<br>The TalentNest Team</p>
</body></html>{{end}}

{{define "comment"}}<!DOCTYPE html>
<html><body style="font-family: Arial, sans-serif; color: #333;">
<h1 style="color: #0077B5;">New Comment on Your Post</h1>
<p>Hello {{.RecipientName}},</p>
<p>{{.CommenterName}} commented on your post:</p>
<blockquote style="border-left: 4px solid #0077B5; padding-left: 12px;">{{.Comment}}</blockquote>
<p><a href="{{.PostURL}}" style="background-color: #0077B5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px;">View Comment</a></p>
</body></html>{{end}}

{{define "connectionAccepted"}}<!DOCTYPE html>
<html><body style="font-family: Arial, sans-serif; color: #333;">
<h1 style="color: #0077B5;">Connection Accepted!</h1>
<p>Hello {{.SenderName}},</p>
<p><strong>{{.RecipientName}}</strong> has accepted your connection request on TalentNest.</p>
<p><a href="{{.ProfileURL}}" style="background-color: #0077B5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px;">View Profile</a></p>
</body></html>{{end}}
`))
