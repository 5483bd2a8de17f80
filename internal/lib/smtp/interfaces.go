// Package smtp fornece as interfaces de envio de e-mail transacional.
package smtp

import "io"

// Client é a interface do cliente SMTP.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// TransportInterface é a interface do transporte SMTP.
type TransportInterface interface {
	Connect() (Client, error)
	GetSMTPUser() string
}
