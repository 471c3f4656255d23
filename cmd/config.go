package cmd

// Config carries all runtime settings, loaded from the environment in main.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	StatusAPIBaseURL string

	KafkaHost             string
	KafkaConsumerGroup    string
	KafkaTransitionsTopic string

	EmailEnabled   bool
	EmailRecipient string
	MailFrom       string
	SMTPAddr       string

	SMSEnabled   bool
	SMSRecipient string
}
