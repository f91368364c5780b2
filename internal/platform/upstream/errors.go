package upstream

import (
	"errors"
	"fmt"
)

// Kind は上流呼び出しの失敗分類です。
type Kind int

const (
	// KindUnreachable は接続エラーやタイムアウトで上流に到達できなかったことを示します。
	KindUnreachable Kind = iota + 1
	// KindBadStatus は上流が200以外のステータスを返したことを示します。
	KindBadStatus
	// KindMalformed はレスポンスボディがJSONとして解釈できなかったことを示します。
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindBadStatus:
		return "bad_status"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is a classified upstream failure.
type Error struct {
	Kind   Kind
	Status int // HTTP status; only set for KindBadStatus
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBadStatus:
		return fmt.Sprintf("upstream http %d", e.Status)
	case KindMalformed:
		return fmt.Sprintf("upstream malformed response: %v", e.Err)
	default:
		return fmt.Sprintf("upstream unreachable: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind はerrのチェーンに指定Kindの*Errorが含まれるかを返します。
func IsKind(err error, kind Kind) bool {
	var upErr *Error
	return errors.As(err, &upErr) && upErr.Kind == kind
}
