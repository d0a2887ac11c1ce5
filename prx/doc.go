// Package prx builds and queries a table of PSP module exports.
//
// The input is a psplibdoc document: a flat, tag-delimited listing of PRX
// files, the libraries each one exports, and the functions and variables of
// every library with their NIDs.
//
//	<PRXFILE>
//	  <PRX>kd/iofilemgr.prx</PRX>
//	  <PRXNAME>sceIOFileManager</PRXNAME>
//	  <LIBRARIES>
//	    <LIBRARY>
//	      <NAME>IoFileMgrForUser</NAME>
//	      <FLAGS>0x40010011</FLAGS>
//	      <FUNCTIONS>
//	        <FUNCTION><NID>0x109F50BC</NID><NAME>sceIoOpen</NAME></FUNCTION>
//	      </FUNCTIONS>
//	      <VARIABLES></VARIABLES>
//	    </LIBRARY>
//	  </LIBRARIES>
//	</PRXFILE>
//
// [Build] turns the text into a [Table]; [Load] does the same for an
// [io.Reader] and memoizes the result by content. The table is never
// modified after it is built.
//
// # Lookups
//
// [Table.FindModule], [Table.FindSymbolByName] and [Table.FindSymbolByNID]
// are exact, case-sensitive linear scans that return the first match in
// document order, visiting functions before variables within each library.
// [Table.Resolve] tries all three in turn: module, NID, name.
//
// # Extras
//
// [Table.Suggest] proposes near matches for a failed query, and [Filter]
// selects modules with an expr-lang predicate.
package prx
