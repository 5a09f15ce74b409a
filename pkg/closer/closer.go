// Package closer собирает функции освобождения ресурсов и закрывает их
// в порядке LIFO при завершении приложения.
package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// Closer обеспечивает потокобезопасное однократное закрытие ресурсов.
type Closer struct {
	mu    sync.Mutex
	once  sync.Once
	names []string
	funcs []Func
}

func NewCloser() *Closer {
	return &Closer{}
}

// Add регистрирует функцию закрытия под именем для логов.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = append(c.names, name)
	c.funcs = append(c.funcs, f)
}

// Close закрывает все зарегистрированные ресурсы в порядке LIFO.
// Каждая функция получает общий контекст с дедлайном; по его истечении
// оставшиеся ресурсы всё равно вызываются, но уже с отменённым контекстом.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		names, funcs := c.names, c.funcs
		c.mu.Unlock()

		var failures []string
		for i := len(funcs) - 1; i >= 0; i-- {
			if closeErr := funcs[i](ctx); closeErr != nil {
				failures = append(failures, fmt.Sprintf("%s: %v", names[i], closeErr))
			}
		}

		if len(failures) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(failures, "\n"))
		}
	})

	return err
}
