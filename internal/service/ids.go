package service

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// OrderIDGenerator выдает идентификаторы заказов вида <accountId>-<snowflake>
type OrderIDGenerator struct {
	node *snowflake.Node
}

// NewOrderIDGenerator создает генератор для узла nodeID (0..1023)
func NewOrderIDGenerator(nodeID int64) (*OrderIDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node %d: %w", nodeID, err)
	}
	return &OrderIDGenerator{node: node}, nil
}

// OrderID возвращает новый идентификатор заказа для счета
func (g *OrderIDGenerator) OrderID(accountID int64) string {
	return fmt.Sprintf("%d-%s", accountID, g.node.Generate().String())
}

// RequestID возвращает идентификатор запроса к провайдеру
func (g *OrderIDGenerator) RequestID() string {
	return newRequestID()
}

func newRequestID() string {
	return uuid.NewString()
}
