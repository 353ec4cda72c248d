package counter

type Counter struct {
	addChan   chan int
	countChan chan int
}

// NewCounter creates and initializes a new Counter
func NewCounter() *Counter {
	c := &Counter{
		addChan:   make(chan int),
		countChan: make(chan int),
	}

	go c.receiveCounts()
	return c
}

// receiveCounts owns the total; both channels are unbuffered, so every
// Add and Count is serialized through this loop.
func (c *Counter) receiveCounts() {
	var total int
	for {
		select {
		case add := <-c.addChan:
			total += add
		case c.countChan <- total:
			// Sends the current total when requested
		}
	}
}

// Add adds a value to the counter safely
func (c *Counter) Add(value int) {
	c.addChan <- value
}

// Count returns the current count safely
func (c *Counter) Count() int {
	return <-c.countChan
}
