package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Nomes da topologia de postbacks de afiliados.
const (
	PostbackExchange   = "postbacks"
	PostbackQueue      = "postbacks.conversion"
	PostbackRoutingKey = "conversion"
)

// SetupChannel abre um canal e declara o exchange, a fila e o bind
// do despacho de postbacks.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("%s: failed to set QoS: %w", op, err)
	}
	err = ch.ExchangeDeclare(
		PostbackExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	_, err = ch.QueueDeclare(
		PostbackQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.QueueBind(PostbackQueue, PostbackRoutingKey, PostbackExchange, false, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ch, nil
}
