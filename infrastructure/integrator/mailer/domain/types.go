package domain

// Message é um email pronto para envio pelo provedor
type Message struct {
	To       string `json:"to"`
	ToName   string `json:"to_name,omitempty"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}

// SendResult reporta o desfecho do envio para um destinatário
type SendResult struct {
	To        string `json:"to"`
	MessageID string `json:"message_id,omitempty"`
	Accepted  bool   `json:"accepted"`
	Reason    string `json:"reason,omitempty"`
}

// BatchReport consolida o resultado de um disparo em lote
type BatchReport struct {
	Sent     int          `json:"sent"`
	Failed   int          `json:"failed"`
	Failures []SendResult `json:"failures,omitempty"`
}
