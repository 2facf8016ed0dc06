package events

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/biosecret/go-tasks/models"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

const (
	TaskCreated = "task.created"
	TaskUpdated = "task.updated"
	TaskDeleted = "task.deleted"

	defaultTopic   = "tasks"
	connectTimeout = 3 * time.Second
	publishTimeout = 2 * time.Second
)

// TaskEvent là thông báo gửi lên MQTT khi task thay đổi
type TaskEvent struct {
	Type       string       `json:"type"`
	TaskID     int          `json:"task_id"`
	Task       *models.Task `json:"task,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

type publisher struct {
	mu     sync.RWMutex
	client mqtt.Client
	topic  string
}

var current publisher

func NewTaskEvent(kind string, id int, task *models.Task) TaskEvent {
	return TaskEvent{Type: kind, TaskID: id, Task: task, OccurredAt: time.Now().UTC()}
}

// InitMQTTPublisher kết nối tới broker trong MQTT_URL, topic lấy từ path của URL
func InitMQTTPublisher(rawURL, clientID string) error {
	uri, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid MQTT_URL: %w", err)
	}
	if uri.Host == "" {
		return fmt.Errorf("invalid MQTT_URL %q: missing host", rawURL)
	}

	client := mqtt.NewClient(createClientOptions(clientID, uri))
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("timed out connecting to MQTT broker %s", uri.Host)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	current.mu.Lock()
	current.client = client
	current.topic = topicFromURL(uri)
	current.mu.Unlock()

	zap.L().Info("connected to MQTT broker", zap.String("host", uri.Host), zap.String("topic", topicFromURL(uri)))
	return nil
}

func createClientOptions(clientID string, uri *url.URL) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", uri.Host))
	if uri.User != nil {
		opts.SetUsername(uri.User.Username())
		password, _ := uri.User.Password()
		opts.SetPassword(password)
	}
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)
	return opts
}

func topicFromURL(uri *url.URL) string {
	topic := strings.Trim(uri.Path, "/")
	if topic == "" {
		return defaultTopic
	}
	return topic
}

// Publish gửi sự kiện, bỏ qua nếu chưa kết nối. Lỗi chỉ được ghi log.
func Publish(evt TaskEvent) {
	current.mu.RLock()
	client, topic := current.client, current.topic
	current.mu.RUnlock()

	if client == nil {
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		zap.L().Error("failed to encode task event", zap.String("type", evt.Type), zap.Error(err))
		return
	}

	token := client.Publish(topic, 0, false, payload)
	go func() {
		if !token.WaitTimeout(publishTimeout) {
			zap.L().Warn("timed out publishing task event", zap.String("type", evt.Type), zap.Int("task_id", evt.TaskID))
			return
		}
		if err := token.Error(); err != nil {
			zap.L().Error("failed to publish task event", zap.String("type", evt.Type), zap.Int("task_id", evt.TaskID), zap.Error(err))
		}
	}()
}

// Close ngắt kết nối MQTT
func Close() {
	current.mu.Lock()
	defer current.mu.Unlock()

	if current.client != nil {
		current.client.Disconnect(250)
		current.client = nil
		zap.L().Info("MQTT connection closed")
	}
}
