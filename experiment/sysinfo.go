// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// SysInfo describes the machine a batch ran on.
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

// CollectSysInfo queries the host. Fields that cannot be read are "unknown".
func CollectSysInfo() SysInfo {
	info := SysInfo{Platform: "unknown", CPU: "unknown", RAM: "unknown"}

	if hostStat, err := host.Info(); err == nil && hostStat.Platform != "" {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return info
}

func (s SysInfo) String() string {
	return fmt.Sprintf("%s, %s, %s", s.Platform, s.CPU, s.RAM)
}
