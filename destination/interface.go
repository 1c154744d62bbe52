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

package destination

import (
	"context"
)

type Config interface {
	Validate() error
}

// Uploader persists local files into a remote bucket. An Uploader never
// touches the local file beyond reading it.
type Uploader interface {
	GetConfigRef() Config
	Spec() any
	Type() string
	// Check sets up the client and verifies the bucket is reachable.
	//
	// Note: Check must be called before Upload
	Check(ctx context.Context, bucket string) error
	// Upload copies the file at source into bucket under the object name destination.
	Upload(ctx context.Context, bucket, source, destination string) error
	Close() error
}
