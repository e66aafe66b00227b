package rtui

import "github.com/nanolsn/rtui/glapi"

var shaderHeaderES2 = `
#define GLRENDER_GL2 1
#ifdef GL_ES
precision mediump float;
#endif
`

var shaderHeaderGL3 = `#version 330 core
#define GLRENDER_GL3 1
`

func shaderHeader(p glapi.Profile) string {
	if p == glapi.ProfileGL3 {
		return shaderHeaderGL3
	}
	return shaderHeaderES2
}

var rectVertexShader = `
uniform mat4 projection;
#ifdef GLRENDER_GL3
   in vec2 pos;
   in vec2 st;
   out vec2 fst;
#else
   attribute vec2 pos;
   attribute vec2 st;
   varying vec2 fst;
#endif
void main(void) {
   fst = st;
   gl_Position = projection * vec4(pos, 0.0, 1.0);
}`

var baseFragmentShader = `
uniform vec4 col;
uniform sampler2D texture0;
uniform bool draw_texture;
#ifdef GLRENDER_GL3
   in vec2 fst;
   out vec4 outColor;
#else
   varying vec2 fst;
#endif
void main(void) {
   vec4 result = col;
   if (draw_texture) {
#ifdef GLRENDER_GL3
       result *= texture(texture0, fst);
#else
       result *= texture2D(texture0, fst);
#endif
   }
#ifdef GLRENDER_GL3
   outColor = result;
#else
   gl_FragColor = result;
#endif
}`

var fontFragmentShader = `
uniform vec4 col;
uniform sampler2D texture0;
#ifdef GLRENDER_GL3
   in vec2 fst;
   out vec4 outColor;
#else
   varying vec2 fst;
#endif
void main(void) {
#ifdef GLRENDER_GL3
   float alpha = texture(texture0, fst).r;
   outColor = vec4(col.rgb, col.a * alpha);
#else
   float alpha = texture2D(texture0, fst).r;
   gl_FragColor = vec4(col.rgb, col.a * alpha);
#endif
}`

var postVertexShader = `
#ifdef GLRENDER_GL3
   in vec2 pos;
   in vec2 st;
   out vec2 fst;
#else
   attribute vec2 pos;
   attribute vec2 st;
   varying vec2 fst;
#endif
void main(void) {
   fst = st;
   gl_Position = vec4(pos, 0.0, 1.0);
}`

var postFragmentShader = `
uniform sampler2D frame;
#ifdef GLRENDER_GL3
   in vec2 fst;
   out vec4 outColor;
#else
   varying vec2 fst;
#endif
void main(void) {
#ifdef GLRENDER_GL3
   outColor = texture(frame, fst);
#else
   gl_FragColor = texture2D(frame, fst);
#endif
}`
