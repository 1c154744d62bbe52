/*
 * Copyright 2025 Olake By Datazip
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

type MessageType string

const (
	GenerateMessage MessageType = "GENERATE"
	CleanMessage    MessageType = "CLEAN"
	UploadMessage   MessageType = "UPLOAD"
	SpecMessage     MessageType = "SPEC"
)

type Status string

const (
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

// Message is the single status line emitted by every command, whichever
// front-end triggered it.
type Message struct {
	Type    MessageType `json:"type"`
	Status  Status      `json:"status"`
	Path    string      `json:"path,omitempty"`
	Rows    int         `json:"rows,omitempty"`
	Message string      `json:"message,omitempty"`
}
