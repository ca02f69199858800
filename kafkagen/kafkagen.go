// Copyright 2017 Pilosa Corp.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions
// are met:
//
// 1. Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright
// notice, this list of conditions and the following disclaimer in the
// documentation and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its
// contributors may be used to endorse or promote products derived
// from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND
// CONTRIBUTORS "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES,
// INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
// DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR
// CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
// BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
// SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY,
// WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
// NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH
// DAMAGE.

package kafkagen

import (
	"encoding/json"
	"io"
	"log"
	"time"

	"github.com/Shopify/sarama"
	"github.com/etldemo/edk"
	"github.com/etldemo/edk/fake"
	"github.com/pkg/errors"
)

// Main holds the execution state for the kafka employee generator.
type Main struct {
	Hosts []string `help:"Comma separated list of kafka hosts."`
	Topic string   `help:"Kafka topic to produce to."`
	Seed  int64    `help:"Random seed for employee generation. -1 uses the current time."`
	Num   uint64   `help:"Number of employees to produce. 0 means unlimited."`

	Rate time.Duration `help:"Interval between messages."`
}

// NewMain returns a new Main.
func NewMain() *Main {
	return &Main{
		Hosts: []string{"localhost:9092"},
		Topic: "employees",
		Seed:  -1,
		Num:   0,

		Rate: time.Second * 1,
	}
}

// JSONEmployee implements the sarama.Encoder interface for Employee using
// json.
type JSONEmployee edk.Employee

// Encode marshals the employee to json.
func (e JSONEmployee) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Length returns the length of the marshalled json.
func (e JSONEmployee) Length() int {
	bytes, _ := e.Encode()
	return len(bytes)
}

// Run runs the kafka generator.
func (m *Main) Run() error {
	seed := m.Seed
	if seed == -1 {
		seed = time.Now().UnixNano()
	}
	conf := sarama.NewConfig()
	conf.Version = sarama.V0_10_0_0
	conf.Producer.Return.Successes = true
	producer, err := sarama.NewSyncProducer(m.Hosts, conf)
	if err != nil {
		return errors.Wrap(err, "getting new producer")
	}
	defer producer.Close()

	src := fake.NewEmployeeSource(seed, m.Num)
	for ticker := time.NewTicker(m.Rate); true; <-ticker.C {
		rec, err := src.Record()
		if err == io.EOF {
			return nil
		}
		emp := rec.(*edk.Employee)
		msg := &sarama.ProducerMessage{Topic: m.Topic, Value: JSONEmployee(*emp)}
		_, _, err = producer.SendMessage(msg)
		if err != nil {
			log.Printf("Error sending message: '%v', backing off", err)
			time.Sleep(time.Second * 10)
		}
	}
	return nil
}
