package notifications

import "github.com/akilimali/parapheur/pkg/repository"

func scanNotification(s repository.Scanner) (Notification, error) {
	var n Notification
	err := s.Scan(
		&n.ID,
		&n.UserID,
		&n.Kind,
		&n.Title,
		&n.Message,
		&n.DocumentID,
		&n.Read,
		&n.CreatedAt,
	)
	return n, err
}
