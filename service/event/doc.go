// Package event provides the synchronous, in-process dispatcher that invokes
// module handlers for a flow event. It is not a message bus:
// there are no queues, no retries and no asynchronous delivery.
package event
