package ports

import (
	"context"
)

// Broadcaster pushes a payload to every subscriber of topic. Delivery is
// best effort; callers log failures and move on.
type Broadcaster interface {
	Publish(ctx context.Context, topic string, payload any) error
}
