package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckMQTTTopic(t *testing.T) {

	assert := assert.New(t)

	topic, err := CheckMQTTTopic("epson2mqtt")
	assert.NoError(err)
	assert.Equal("epson2mqtt", topic)

	topic, err = CheckMQTTTopic("Epson2MQTT")
	assert.NoError(err)
	assert.Equal("epson2mqtt", topic, "topic is lowercased")

	_, err = CheckMQTTTopic("epson/printer")
	assert.Error(err, "slashes are rejected")

	_, err = CheckMQTTTopic("")
	assert.Error(err, "empty topic is rejected")
}
