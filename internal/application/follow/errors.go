package follow

import "errors"

var (
	// ErrAlreadyFollowing возникает при повторной подписке на того же пользователя
	ErrAlreadyFollowing = errors.New("already following")

	// ErrNotFollowing возникает при отписке без существующей подписки
	ErrNotFollowing = errors.New("not following")

	// ErrNoFollowers возникает когда у пользователя нет ни одного подписчика
	ErrNoFollowers = errors.New("user has no followers")

	// ErrNoFollowees возникает когда пользователь ни на кого не подписан
	ErrNoFollowees = errors.New("user follows nobody")
)
