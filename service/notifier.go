package service

import "log"

//go:generate mockgen -destination=./mocks/mock_notifier.go -package=mocks web3explorer/service Notifier

// Notifier имитирует отправку SMS и email. Реальной доставки нет,
// уведомления уходят в лог.
type Notifier interface {
	Notify(kind, recipient, message string)
}

type LogNotifier struct{}

func (LogNotifier) Notify(kind, recipient, message string) {
	log.Printf("Имитация %s-уведомления для %s: %s", kind, recipient, message)
}
