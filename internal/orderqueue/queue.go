package orderqueue

import (
	"container/list"
	"sync"

	"github.com/skillbridge/service-core/internal/domain"
)

// Queue holds orders awaiting provider dispatch. It is a deque: new orders
// join at the back, "handle next" pops from the front, and rush orders jump
// the line via EnqueueFront. The durable store stays the source of truth,
// so the queue can always be rebuilt from it.
type Queue struct {
	mu    sync.Mutex
	ll    *list.List
	index map[string]*list.Element
}

func New() *Queue {
	return &Queue{
		ll:    list.New(),
		index: make(map[string]*list.Element),
	}
}

// Enqueue appends at the back. A duplicate order id is rejected with
// domain.ErrDuplicateOrder and leaves the queue untouched.
func (q *Queue) Enqueue(o domain.Order) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.index[o.ID]; ok {
		return domain.ErrDuplicateOrder
	}
	q.index[o.ID] = q.ll.PushBack(o)
	return nil
}

// EnqueueFront is the rush-order escalation path.
func (q *Queue) EnqueueFront(o domain.Order) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.index[o.ID]; ok {
		return domain.ErrDuplicateOrder
	}
	q.index[o.ID] = q.ll.PushFront(o)
	return nil
}

func (q *Queue) DequeueFront() (domain.Order, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.take(q.ll.Front())
}

func (q *Queue) DequeueBack() (domain.Order, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.take(q.ll.Back())
}

// DequeueFor removes and returns the frontmost order belonging to the given
// provider. Linear scan; queues are bounded by a provider's outstanding
// order count, so this stays cheap.
func (q *Queue) DequeueFor(providerID string) (domain.Order, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for e := q.ll.Front(); e != nil; e = e.Next() {
		if e.Value.(domain.Order).ProviderID == providerID {
			return q.take(e)
		}
	}
	return domain.Order{}, false
}

func (q *Queue) Peek() (domain.Order, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	e := q.ll.Front()
	if e == nil {
		return domain.Order{}, false
	}
	return e.Value.(domain.Order), true
}

// Remove supports out-of-order cancellation. Unknown ids report
// domain.ErrNotFound, non-fatal for callers.
func (q *Queue) Remove(orderID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.index[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	q.ll.Remove(e)
	delete(q.index, orderID)
	return nil
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ll.Len()
}

// take assumes the lock is held.
func (q *Queue) take(e *list.Element) (domain.Order, bool) {
	if e == nil {
		return domain.Order{}, false
	}
	o := e.Value.(domain.Order)
	q.ll.Remove(e)
	delete(q.index, o.ID)
	return o, true
}
