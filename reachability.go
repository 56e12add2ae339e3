package basia

import (
	"context"
	"net"
	"time"

	"github.com/tatsushid/go-fastping"
)

type HostStatus struct {
	ResolvedAddr net.IP
	Online       bool
	Latency      time.Duration
}

//	ProbeHost pings a host over ICMP once. Used to tell "the machine is
//	down" apart from "the machine is up but the server is not answering"
//	when writing out remediation hints. Loopback hosts always resolve;
//	a non-resolving host comes back with a nil ResolvedAddr and no error.
func ProbeHost(ctx context.Context, host string, timeout time.Duration) (*HostStatus, error) {

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	addr, err := net.ResolveIPAddr("ip", host)
	if err != nil {
		return &HostStatus{}, nil
	}

	pinger := fastping.NewPinger()
	pinger.MaxRTT = timeout
	pinger.AddIPAddr(addr)

	statusCh := make(chan HostStatus)
	errorCh := make(chan error)

	pinger.OnRecv = func(addr *net.IPAddr, rtt time.Duration) {
		statusCh <- HostStatus{ResolvedAddr: addr.IP, Online: true, Latency: rtt}
	}

	go func() {
		if err := pinger.Run(); err != nil {
			errorCh <- err
			return
		}
		statusCh <- HostStatus{ResolvedAddr: addr.IP}
	}()

	pingCtx, cancelPing := context.WithTimeout(ctx, timeout)
	defer cancelPing()

	select {

	case status := <-statusCh:
		return &status, nil

	case err := <-errorCh:
		return nil, err

	case <-pingCtx.Done():
		return &HostStatus{ResolvedAddr: addr.IP}, nil
	}
}
