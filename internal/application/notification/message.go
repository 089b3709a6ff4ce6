package notification

// Message is the structured notification handed to the delivery worker.
// The JSON field names line up with the Avro schema used on the wire.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	OrderID string `json:"order_id"`
}
