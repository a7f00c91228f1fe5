/*
 * Copyright (C) 2023 The "VeilNetwork/desktop" Authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_simplifiedEventBus_Publish_InvokesSubscribers(t *testing.T) {
	eventBus := New()
	var received string
	eventBus.Subscribe("test topic", func(data string) {
		received = data
	})

	eventBus.Publish("test topic", "test data")

	assert.Equal(t, "test data", received)
}

func Test_simplifiedEventBus_Publish_InvokesSubscribersWithUID(t *testing.T) {
	eventBus := New()
	var received []string
	eventBus.SubscribeWithUID("test topic", "uid-1", func(data string) {
		received = append(received, "uid-1:"+data)
	})
	eventBus.Subscribe("test topic", func(data string) {
		received = append(received, "plain:"+data)
	})

	eventBus.Publish("test topic", "test data")

	assert.ElementsMatch(t, []string{"uid-1:test data", "plain:test data"}, received)

	err := eventBus.UnsubscribeWithUID("test topic", "uid-1", func(data string) {})
	assert.NoError(t, err)
}

func Test_simplifiedEventBus_UnsubscribeWithUID_UnknownTopic(t *testing.T) {
	eventBus := New()

	err := eventBus.UnsubscribeWithUID("no such topic", "uid-1", func(data string) {})

	assert.Error(t, err)
}
