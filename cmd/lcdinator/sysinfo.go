package main

import (
	"fmt"
	"net"
	"slices"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// systemStats is one sample of the system info screen. Fields that could
// not be read hold "?" and CPU is negative.
type systemStats struct {
	CPU    float64
	RAM    string
	Disk   string
	Uptime string
}

func readSystemStats() systemStats {
	st := systemStats{CPU: -1, RAM: "?", Disk: "?", Uptime: "?"}
	if p, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(p) > 0 {
		st.CPU = p[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		st.RAM = fmt.Sprintf("%d/%d MB", vm.Used/(1024*1024), vm.Total/(1024*1024))
	}
	if u, err := disk.Usage("/"); err == nil {
		st.Disk = fmt.Sprintf("%d/%d GB", u.Used/(1024*1024*1024), u.Total/(1024*1024*1024))
	}
	if secs, err := host.Uptime(); err == nil {
		st.Uptime = formatUptime(secs)
	}
	return st
}

func formatUptime(uptimeSeconds uint64) string {
	days := uptimeSeconds / 86400
	hours := (uptimeSeconds % 86400) / 3600
	minutes := (uptimeSeconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd %02dh %02dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%02dh %02dm", hours, minutes)
	}
	return fmt.Sprintf("%02dm", minutes)
}

type NetInterfaceInfo struct {
	Name   string
	IP     string
	Up     bool
	RxRate int64 // bytes/sec
	TxRate int64 // bytes/sec
}

// NetSampler turns interface byte counters into rates between calls.
type NetSampler struct {
	mu   sync.Mutex
	prev map[string][2]uint64
	last time.Time
}

func (s *NetSampler) Interfaces() ([]NetInterfaceInfo, error) {
	ifaces, err := psnet.Interfaces()
	if err != nil {
		return nil, err
	}
	ioStats, _ := psnet.IOCounters(true)

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	var dt float64
	if !s.last.IsZero() {
		dt = now.Sub(s.last).Seconds()
	}
	s.last = now
	if s.prev == nil {
		s.prev = make(map[string][2]uint64)
	}

	counters := make(map[string]psnet.IOCountersStat, len(ioStats))
	for _, stat := range ioStats {
		counters[stat.Name] = stat
	}

	var result []NetInterfaceInfo
	for _, iface := range ifaces {
		info := NetInterfaceInfo{
			Name: iface.Name,
			Up:   slices.Contains(iface.Flags, "up"),
		}
		for _, addr := range iface.Addrs {
			ip, _, err := net.ParseCIDR(addr.Addr)
			if err != nil {
				continue
			}
			if !ip.IsLoopback() && ip.To4() != nil {
				info.IP = ip.String()
			}
		}
		if stat, ok := counters[iface.Name]; ok {
			if prev, ok := s.prev[iface.Name]; ok && dt > 0 && stat.BytesRecv >= prev[0] && stat.BytesSent >= prev[1] {
				info.RxRate = int64(float64(stat.BytesRecv-prev[0]) / dt)
				info.TxRate = int64(float64(stat.BytesSent-prev[1]) / dt)
			}
			s.prev[iface.Name] = [2]uint64{stat.BytesRecv, stat.BytesSent}
		}
		result = append(result, info)
	}
	return result, nil
}

// formatRate renders bytes per second in at most five characters.
func formatRate(bps int64) string {
	switch {
	case bps < 1000:
		return fmt.Sprintf("%dB", bps)
	case bps < 1000*1000:
		return fmt.Sprintf("%dK", bps/1000)
	default:
		return fmt.Sprintf("%dM", bps/(1000*1000))
	}
}
