package service

import (
	"context"
	"fmt"

	"github.com/RudraNarayan94/MOK/internal/mailer"
	"github.com/RudraNarayan94/MOK/internal/models"
	"go.uber.org/zap"
)

// NotifierS sends account emails on a best-effort, at-most-one-attempt
// basis. Jobs go through the worker queue; if the queue is unavailable
// the mail is sent inline. Delivery failures are logged but never reach
// the action that triggered them.
type NotifierS struct {
	queue QueueI
	mail  MailerI
	log   *zap.Logger
}

func NewNotifierService(queue QueueI, mail MailerI, log *zap.Logger) *NotifierS {
	return &NotifierS{queue: queue, mail: mail, log: log}
}

func (n *NotifierS) SendWelcome(user models.User) {
	n.dispatch(mailer.Message{
		To:      user.Email,
		Subject: "Welcome to MOK – Ready to Type Like a Speed Demon?",
		HTML: fmt.Sprintf(`
			<html><body>
				<h2>Welcome to MOK, %s!</h2>
				<p>You've officially entered the <strong>Typing Speed Arena</strong>.</p>
				<p>Speed is great, but accuracy? That's the real flex.</p>
				<p>See you at the leaderboard,<br><strong>The MOK Team</strong></p>
			</body></html>`, user.Username),
	})
}

func (n *NotifierS) SendPasswordChanged(user models.User) {
	n.dispatch(mailer.Message{
		To:      user.Email,
		Subject: "Your Password Has Been Changed Successfully",
		HTML: fmt.Sprintf(`
			<html><body>
				<h2>Password Changed Successfully</h2>
				<p>Dear <strong>%s</strong>,</p>
				<p>Your password has been successfully updated. If you made this change, no further action is needed.</p>
				<p>If you did <strong>not</strong> request this change, please reset your password immediately and contact our support team.</p>
				<p>Stay secure,<br><strong>MOK Security Team</strong></p>
			</body></html>`, user.Username),
	})
}

func (n *NotifierS) SendPasswordReset(user models.User, link string) {
	n.dispatch(mailer.Message{
		To:      user.Email,
		Subject: "Reset Your Password",
		HTML: fmt.Sprintf(`
			<html><body>
				<h2>Password Reset Request</h2>
				<p>Dear <strong>%s</strong>,</p>
				<p>You have requested to reset your password. Follow the link below to proceed:</p>
				<p><a href="%s">Reset Password</a></p>
				<p>If you did not request this, please ignore this email.</p>
				<p>Stay secure,<br><strong>MOK Security Team</strong></p>
			</body></html>`, user.Username, link),
	})
}

func (n *NotifierS) dispatch(msg mailer.Message) {
	job := func(ctx context.Context) error {
		if err := n.mail.Send(msg); err != nil {
			n.log.Error("failed to send email", zap.String("to", msg.To), zap.Error(err))
		}
		return nil
	}

	if err := n.queue.Submit(job); err != nil {
		n.log.Warn("email queue unavailable, sending inline", zap.Error(err))
		if err := n.mail.Send(msg); err != nil {
			n.log.Error("failed to send email", zap.String("to", msg.To), zap.Error(err))
		}
	}
}
