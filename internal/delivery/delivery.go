// Package delivery defines the contract every transport front end
// (HTTP today) satisfies so the Fx app can start them uniformly.
package delivery

import "context"

// Delivery is a serving surface of the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
