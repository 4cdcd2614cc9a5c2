package topics

type CreateTopicPayload struct {
	TopicName string `json:"topic_name" validate:"required,max=200"`
}
