package avro

// EmailMessageSchema is the Avro schema for queued email notifications.
// All fields are plain strings so producer and consumer stay trivially
// compatible across deploys.
const EmailMessageSchema = `{
	"type": "record",
	"name": "EmailMessage",
	"namespace": "com.twinkle.notification",
	"fields": [
		{"name": "to", "type": "string"},
		{"name": "subject", "type": "string"},
		{"name": "html", "type": "string"},
		{"name": "order_id", "type": "string"}
	]
}`
