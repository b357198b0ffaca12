package ui

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/hnakamur/nescore/nes"
)

// Start opens a window and runs core until it is closed, rendering
// completed PPU frames to an OpenGL texture and feeding completed APU
// samples to the default audio device.
func Start(core *nes.Core, width int, height int) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	window, err := glfw.CreateWindow(width, height, "nescore", nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return err
	}
	program, err := newProgram()
	if err != nil {
		return err
	}
	gl.UseProgram(program)

	snd := newAudio()
	if err := snd.start(); err != nil {
		glog.Errorf("audio disabled: %v", err)
	} else {
		defer snd.terminate()
		core.SetAudioOut(snd.channel)
	}

	for !window.ShouldClose() {
		if _, err := core.Step(); err != nil {
			glog.Errorf("core halted: %v", err)
			return err
		}
		if frame, ok := core.TakeFrame(); ok {
			updateTexture(program, frame)
			core.SetController(0, getKeys(window))
			window.SwapBuffers()
			glfw.PollEvents()
		}
	}
	return nil
}
