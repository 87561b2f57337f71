// Copyright (c) 2020 the NazaraEngine authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/515760058/NazaraEngine/device"
	"github.com/515760058/NazaraEngine/gfx/vkr"
	log "github.com/sirupsen/logrus"
)

func main() {
	instance, err := vkr.NewInstance(vkr.DefaultApplicationInfo, nil, vkr.InstanceConfiguration{})
	if err != nil {
		log.Fatal(err)
	}
	defer instance.Destroy()

	infos, err := device.Enumerate(instance)
	if err != nil {
		log.Fatal(err)
	}

	output, err := json.Marshal(infos)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s", output)
}
