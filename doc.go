// Package containers provides small synchronized container building blocks:
// a mutex/condition-variable based blocking FIFO queue for producer/consumer
// hand-off, and a fixed-capacity sparse array that detects reads of slots
// that were never assigned.
//
// The containers are independent of each other and carry no further runtime;
// they are meant to be embedded directly into concurrent or sequential
// application code.
package containers
