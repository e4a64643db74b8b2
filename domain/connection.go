//go:generate go run go.uber.org/mock/mockgen -source=connection.go -destination=../mocks/mock_connection.go -package=mocks
package domain

// Connection is the write side of a client session.
// Only the gateway implements it, other components hand their results to it.
type Connection interface {
	ID() string
	SendJSON(v any) error
	SendBinary(data []byte) error
	Closed() bool
}
