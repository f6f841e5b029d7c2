package kafka

import (
	"strings"

	"greendrop-service/src/pkg/log"

	"github.com/IBM/sarama"
)

type Producer interface {
	Publish(topic string, key []byte, value []byte) error
	Close() error
}

type Cfg struct {
	KafkaUrl      string
	KafkaUsername string
	KafkaPassword string
	AppName       string
}

var kafkaConfig Cfg

func InitKafkaConfig(cfg Cfg) Cfg {
	kafkaConfig = cfg
	return kafkaConfig
}

func GetConfig() Cfg {
	return kafkaConfig
}

type producer struct {
	sync sarama.SyncProducer
	log  log.Log
}

func NewProducer(cfg Cfg, logger log.Log) (Producer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.ClientID = cfg.AppName
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Retry.Max = 3

	if cfg.KafkaUsername != "" {
		saramaCfg.Net.SASL.Enable = true
		saramaCfg.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		saramaCfg.Net.SASL.User = cfg.KafkaUsername
		saramaCfg.Net.SASL.Password = cfg.KafkaPassword
	}

	sync, err := sarama.NewSyncProducer(strings.Split(cfg.KafkaUrl, ","), saramaCfg)
	if err != nil {
		logger.Error("kafka", "failed to create sync producer: "+err.Error(), "NewProducer", "")
		return nil, err
	}

	return &producer{sync: sync, log: logger}, nil
}

func (p *producer) Publish(topic string, key []byte, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	_, _, err := p.sync.SendMessage(msg)
	return err
}

func (p *producer) Close() error {
	return p.sync.Close()
}
